package store

import (
	"errors"
	"fmt"
	"os"

	"fjacquet/txlabel/internal/fileutils"
)

// LoadResult is the outcome of loading a rule database. When the source was
// malformed, DB holds the default rules and Warning explains why; callers
// decide how to surface it.
type LoadResult struct {
	DB           *CategoryDB
	Path         string
	UsedDefaults bool
	Warning      error
}

// Load reads the rule database at path. An empty path or a missing file yields
// the defaults without a warning. A file that exists but cannot be read is an
// error; one that cannot be parsed falls back to the defaults with a warning.
func Load(path string) (LoadResult, error) {
	if path == "" {
		return defaultsResult("", nil), nil
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultsResult(path, nil), nil
		}
		return LoadResult{}, fmt.Errorf("error reading rule database: %w", err)
	}

	return LoadBytes(data, FormatForPath(path), path), nil
}

// LoadBytes parses an in-memory rule database, falling back to the defaults
// with a warning when it is malformed.
func LoadBytes(data []byte, format Format, source string) LoadResult {
	db, err := Parse(data, format, source)
	if err != nil {
		return defaultsResult(source, err)
	}
	return LoadResult{DB: db, Path: source}
}

func defaultsResult(path string, warning error) LoadResult {
	return LoadResult{
		DB:           NewDefaultCategoryDB(),
		Path:         path,
		UsedDefaults: true,
		Warning:      warning,
	}
}
