package pathutils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by [FindUp] when no file with the given name exists
// in the searched directory tree.
var ErrNotFound = errors.New("file not found in directory tree")

// FindUp returns the absolute path to the nearest regular file with the given name,
// searching start and its parent directories.
// If start is empty, the current working directory is used.
// Directories named like the file are ignored.
// Returns an error wrapping [ErrNotFound] if no such file exists,
// or a different error if filesystem operations fail.
func FindUp(start, name string) (string, error) {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to get current working directory")
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", start)
	}
	for {
		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return "", errors.Wrapf(err, "failed to stat %s", path)
			}
			// File doesn't exist, continue searching parent directories
		} else if !fi.IsDir() {
			return path, nil
		}

		d := filepath.Dir(dir)
		if d == dir {
			break
		}
		dir = d
	}
	return "", errors.Wrapf(ErrNotFound, "%s", name)
}
