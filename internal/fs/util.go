package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/warp/internal/logging"
)

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

// WriteFile creates the file at path with the content produced by write.
//
// The content goes to a temporary file in the same directory first
// and is moved to path once write succeeded. If anything fails, path is
// left untouched.
// Returns the number of bytes written.
func WriteFile(path string, write func(w io.Writer) error) (int64, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()

	cw := &countingWriter{w: tmp}
	err = write(cw)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		// CreateTemp uses 0600
		err = os.Chmod(tmpName, 0644)
	}
	if err == nil {
		err = Move(tmpName, path)
	}

	if err != nil {
		ignoredErr := os.Remove(tmpName)
		if ignoredErr != nil && !os.IsNotExist(ignoredErr) {
			logging.Warning("Failed to remove temporary file %v", tmpName)
		}
		return 0, err
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// MkdirAll creates dir and its parents.
// An existing directory is not an error.
func MkdirAll(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		if !os.IsExist(err) {
			return err
		}
	}
	return nil
}
