// Package validation checks user-supplied paths before they are processed.
package validation

import (
	"fmt"
	"os"
)

// InputFile checks that path names an existing regular file.
func InputFile(path string) error {
	info, err := stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input must be a regular file: %s", path)
	}
	return nil
}

// InputDirectory checks that path names an existing directory.
func InputDirectory(path string) error {
	info, err := stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("input must be a directory: %s", path)
	}
	return nil
}

// RuleFilePermissions rejects modes that grant any access to other users.
func RuleFilePermissions(mode os.FileMode) error {
	if mode.Perm()&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0640", mode.Perm().String())
	}
	return nil
}

func stat(path string) (os.FileInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error checking path %s: %w", path, err)
	}
	return info, nil
}
