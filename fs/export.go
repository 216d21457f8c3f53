package fs

import (
	"os"
	"path/filepath"
)

// Export stages an export in a temporary sibling directory and replaces
// the output directory only on Commit, so a failed export leaves the
// previous one untouched.
type Export struct {
	baseDir string
	name    string
}

// NewExport creates a new Export for the output directory dir.
func NewExport(dir string) *Export {
	dir = filepath.Clean(dir)
	return &Export{
		baseDir: filepath.Dir(dir),
		name:    filepath.Base(dir),
	}
}

// Dir is the staging directory meetings should be written to.
func (e *Export) Dir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Export) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Begin clears any staging directory left behind by an interrupted
// export and creates an empty one.
func (e *Export) Begin() error {
	if err := os.RemoveAll(e.Dir()); err != nil {
		return err
	}
	return os.MkdirAll(e.Dir(), 0755)
}

// Commit replaces the output directory with the staged files.
func (e *Export) Commit() error {
	if err := os.MkdirAll(e.Dir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.Dir(), e.finalDir())
}

// Abort discards the staged files.
func (e *Export) Abort() error {
	return os.RemoveAll(e.Dir())
}
