package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		file string
		want string
	}{
		{"default name", "output", "", filepath.Join("output", DefaultOutputFile)},
		{"adds extension", "output", "march", filepath.Join("output", "march.csv")},
		{"keeps extension", "output", "march.CSV", filepath.Join("output", "march.CSV")},
		{"explicit directory", "output", filepath.Join("reports", "march.csv"), filepath.Join("reports", "march.csv")},
		{"absolute path", "output", "/tmp/march.csv", "/tmp/march.csv"},
		{"no output directory", "", "march.csv", "march.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.dir, tt.file))
		})
	}
}
