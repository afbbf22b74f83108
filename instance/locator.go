// Package instance maps instance ids to file paths.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDir overrides the default instance directory.
const EnvDir = "VCGRAPH_INSTANCE_DIR"

// MaxID is the largest id the naming scheme can express.
const MaxID = 999

var ErrInvalidID = errors.New("invalid instance id")

// Locator builds paths of the form Dir/Prefix<id>Ext with the id zero
// padded to three digits, so 5 becomes 005 and 97 becomes 097.
type Locator struct {
	Dir    string
	Prefix string
	Ext    string
}

// Default follows the layout of the public instance set.
var Default = Locator{
	Dir:    "public",
	Prefix: "vc-exact_",
	Ext:    ".gr",
}

// FromEnv returns Default with Dir replaced by $VCGRAPH_INSTANCE_DIR when set.
func FromEnv() Locator {
	l := Default
	if dir := os.Getenv(EnvDir); dir != "" {
		l.Dir = dir
	}
	return l
}

// Name returns the file name for id without the directory.
func (l Locator) Name(id int) (string, error) {
	if id < 1 || id > MaxID {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidID, id, MaxID)
	}
	return fmt.Sprintf("%s%03d%s", l.Prefix, id, l.Ext), nil
}

// Path returns the path of instance id. It does not touch the file system.
func (l Locator) Path(id int) (string, error) {
	name, err := l.Name(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.Dir, name), nil
}
