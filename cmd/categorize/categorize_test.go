package categorize

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/store"
	"fjacquet/txlabel/pkg/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessor(t *testing.T) *processor.Processor {
	t.Helper()
	logger := logging.NewMockLogger()
	rules := store.NewRuleStore(filepath.Join(t.TempDir(), "category_db.json"), logger)
	return processor.NewProcessor(rules, nil, ',', logger)
}

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Categorize transactions")
	assert.Contains(t, Cmd.Long, "key phrases")
	assert.NotNil(t, Cmd.RunE)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	flag := Cmd.Flags().Lookup("description")
	require.NotNil(t, flag)
	assert.Equal(t, "d", flag.Shorthand)
	assert.Contains(t, flag.Usage, "description")
}

func TestCategorizeDescription(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, categorizeDescription(newProcessor(t), "STARBUCKS PLEASANTON CA", &out))
	assert.Equal(t, "Business Type: Personal\nRetailer: \n", out.String())
}

func TestCategorizeFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.csv")
	content := "Status,Date,Description,Debit,Credit,Member Name\n" +
		"Cleared,01/02/2024,AMAZON MKTP,9.99,,SAM\n" +
		"Cleared,01/03/2024,CHEVRON 0042,30.00,,SAM\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0600))
	output := filepath.Join(dir, "output", "labeled.csv")

	var out bytes.Buffer
	require.NoError(t, categorizeFile(newProcessor(t), input, output, &out))

	assert.Contains(t, out.String(), "Categorized 1 new transactions. Total categorized: 1 out of 2.")
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AMAZON MKTP,9.99,,SAM,,Amazon")
}

func TestCategorizeFile_MissingInput(t *testing.T) {
	var out bytes.Buffer
	err := categorizeFile(newProcessor(t), filepath.Join(t.TempDir(), "missing.csv"), "out.csv", &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
