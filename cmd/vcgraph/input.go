package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/vcgraph/graph"
	"github.com/dhamidi/vcgraph/instance"
	"github.com/dhamidi/vcgraph/pace"
)

// instanceFlags selects an instance either by path argument or by id.
type instanceFlags struct {
	id      int
	dir     string
	strict  bool
	lenient bool
}

func (f *instanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.id, "id", 0, "instance id resolved through the instance directory")
	cmd.Flags().StringVar(&f.dir, "dir", "", "instance directory (default $"+instance.EnvDir+" or "+instance.Default.Dir+")")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject self-loops and duplicate edges")
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "accept files with fewer edges than declared")
}

func (f *instanceFlags) options() []pace.Option {
	var opts []pace.Option
	if f.strict {
		opts = append(opts, pace.WithStrictSimple())
	}
	if f.lenient {
		opts = append(opts, pace.WithLenientEdgeCount())
	}
	return opts
}

func (f *instanceFlags) locator() instance.Locator {
	l := instance.FromEnv()
	if f.dir != "" {
		l.Dir = f.dir
	}
	return l
}

func (f *instanceFlags) path(args []string) (string, error) {
	switch {
	case len(args) == 1 && f.id != 0:
		return "", fmt.Errorf("give either a file or --id, not both")
	case len(args) == 1:
		return args[0], nil
	case f.id != 0:
		return f.locator().Path(f.id)
	default:
		return "", fmt.Errorf("no instance given: pass a file or --id")
	}
}

func (f *instanceFlags) load(args []string) (*graph.Graph, error) {
	path, err := f.path(args)
	if err != nil {
		return nil, err
	}
	log.Infof("parsing %s", path)
	g, err := pace.ParseFile(path, f.options()...)
	if err != nil {
		return nil, err
	}
	log.Debugf("%s: %d nodes, %d edges", path, g.NumNodes(), g.NumEdges())
	return g, nil
}
