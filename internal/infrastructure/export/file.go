package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muhammadchandra19/wb-report/pkg/errors"
)

// writeAtomic writes to a temporary file next to filename and renames it into
// place, so a failed write never leaves a truncated export behind.
func writeAtomic(filename string, write func(f *os.File) error) error {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return errors.Wrap(err, errors.FileWriteError, fmt.Sprintf("failed to create %s", filename))
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.FileWriteError, fmt.Sprintf("failed to write %s", filename))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.FileWriteError, fmt.Sprintf("failed to write %s", filename))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.FileWriteError, fmt.Sprintf("failed to write %s", filename))
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.FileWriteError, fmt.Sprintf("failed to replace %s", filename))
	}
	return nil
}

// EnsureDir creates dir and its parents.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, errors.FileWriteError, fmt.Sprintf("failed to create directory %s", dir))
	}
	return nil
}
