package common

import (
	"path/filepath"
	"strings"
)

// DefaultOutputFile is the file name used when no output is given.
const DefaultOutputFile = "categorized_transactions.csv"

// OutputPath resolves where a labeled file is written. A bare file name is
// placed in dir, a ".csv" extension is added when missing, and paths with a
// directory component are used as given.
func OutputPath(dir, name string) string {
	if name == "" {
		name = DefaultOutputFile
	}
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		name += ".csv"
	}
	if filepath.IsAbs(name) || filepath.Dir(name) != "." || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
