package batch

import (
	"bytes"
	"errors"
	"testing"

	"fjacquet/txlabel/internal/batch"
	"fjacquet/txlabel/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBatchCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", Cmd.Use)
	assert.Contains(t, Cmd.Short, "directory")
	assert.Contains(t, Cmd.Long, "txlabel batch -i statements/ -o categorized/")
	assert.NotNil(t, Cmd.RunE)
}

func TestWriteSummary(t *testing.T) {
	summary := batch.Summary{
		Files: []batch.FileResult{
			{Input: "in/jan.csv", NewlyLabeled: 3, Stats: models.LabelStats{Total: 5, Categorized: 4}, Duplicates: 1},
			{Input: "in/feb.csv", Err: errors.New("missing required columns")},
		},
		Succeeded: 1,
		Failed:    1,
	}

	var out bytes.Buffer
	writeSummary(&out, summary)

	text := out.String()
	assert.Contains(t, text, "jan.csv: 3 new, 4/5 categorized, 1 potential duplicates")
	assert.Contains(t, text, "FAILED feb.csv: missing required columns")
	assert.Contains(t, text, "Processed 2 files: 1 succeeded, 1 failed")
}

func TestWriteSummary_NoFiles(t *testing.T) {
	var out bytes.Buffer
	writeSummary(&out, batch.Summary{})
	assert.Equal(t, "No CSV files found.\n", out.String())
}
