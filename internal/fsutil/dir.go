// Package fsutil holds small filesystem helpers.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// EnsureDir creates the directory at path if it does not exist. Only the
// last path element is created. An empty path or "." is a no-op.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("fsutil: %s exists and is not a directory", path)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("fsutil: stat %s: %w", path, err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("fsutil: could not create directory %q, make sure all intermediate directories exist: %w", path, err)
		}
		return fmt.Errorf("fsutil: mkdir %s: %w", path, err)
	}
	return nil
}
