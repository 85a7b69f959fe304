// Package fileutils holds the file operations shared by the rule store and
// the transaction CSV layer.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0750

// EnsureDirectoryExists creates dir and its parents. An empty dir means the
// working directory and is a no-op.
func EnsureDirectoryExists(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ReadFile reads a whole file. A missing file yields an error matching
// os.ErrNotExist.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided data file
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile replaces path with data. The data is written to a temporary file
// in the same directory and renamed over path, so readers never observe a
// partial file.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// CreateFile creates or truncates path for writing, creating parent
// directories. The caller must close the returned file.
func CreateFile(path string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return nil, err
	}

	file, err := os.Create(path) // #nosec G304 -- caller-provided output file
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
