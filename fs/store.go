package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/drivetext"
)

// Ensure Store implements drivetext.TextStore at compile time.
var _ drivetext.TextStore = (*Store)(nil)

// Store writes text artifacts as UTF-8 files under a base directory.
// Each file is written to a temporary sibling and renamed into place, so a
// reader never sees a partial artifact and a failed write leaves any
// previous version intact.
type Store struct {
	baseDir string
}

// NewStore creates a new Store. Relative artifact names resolve against
// baseDir; absolute names are used as given.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Path returns the file path an artifact name resolves to.
func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.baseDir, name)
}

// Save replaces the artifact name with content.
func (s *Store) Save(ctx context.Context, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return drivetext.Errorf(drivetext.EINVALID, "artifact name required")
	}

	path := s.Path(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	// Remove is a no-op once the rename has succeeded.
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
