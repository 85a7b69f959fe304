package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_db.json")

	result, err := Load(path)
	require.NoError(t, err)

	assert.True(t, result.UsedDefaults)
	assert.NoError(t, result.Warning)
	assert.Equal(t, NewDefaultCategoryDB(), result.DB)
	assert.Equal(t, path, result.Path)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	result, err := Load("")
	require.NoError(t, err)
	assert.True(t, result.UsedDefaults)
	assert.Equal(t, 6, result.DB.Len())
}

func TestLoad_MalformedFallsBackWithWarning(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"missing fields", `{"descriptions": ["a"]}`},
		{"mismatched lengths", `{"descriptions": ["a", "b"], "business_labels": ["A"], "retailer_labels": ["", ""]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "category_db.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			result, err := Load(path)
			require.NoError(t, err)

			assert.True(t, result.UsedDefaults)
			assert.Error(t, result.Warning)
			assert.Equal(t, NewDefaultCategoryDB(), result.DB)
		})
	}
}

func TestLoad_UnreadableIsError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "category_db.json")
	require.NoError(t, os.Mkdir(dir, 0750))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestRuleStore_SaveAndLoad(t *testing.T) {
	for _, name := range []string{"category_db.json", "category_db.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			s := NewRuleStore(path, logging.NewMockLogger())

			db := NewDefaultCategoryDB()
			db.AddCategory("walmart", "", "Walmart")
			require.NoError(t, s.Save(db))

			result, err := s.Load()
			require.NoError(t, err)
			assert.False(t, result.UsedDefaults)
			assert.NoError(t, result.Warning)
			assert.Equal(t, db, result.DB)

			rule, ok := result.DB.Rule(6)
			require.True(t, ok)
			assert.Equal(t, "walmart", rule.KeyPhrase)
			assert.Equal(t, "Walmart", rule.RetailerLabel)
		})
	}
}

func TestRuleStore_SaveNil(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "db.json"), logging.NewMockLogger())
	assert.Error(t, s.Save(nil))
}

func TestRuleStore_LoadLogsWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"descriptions": ["a"], "business_labels": [], "retailer_labels": []}`), 0600))

	logger := logging.NewMockLogger()
	s := NewRuleStore(path, logger)

	result, err := s.Load()
	require.NoError(t, err)
	assert.True(t, errors.Is(result.Warning, parsererror.ErrIntegrity))
	assert.True(t, logger.HasEntry("WARN", "Rule database is invalid, using default rules"))
}

func TestRuleStore_LoadWarnsOnPermissiveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_db.json")
	data, err := Marshal(NewDefaultCategoryDB(), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
	require.NoError(t, os.Chmod(path, 0666))

	logger := logging.NewMockLogger()
	result, err := NewRuleStore(path, logger).Load()
	require.NoError(t, err)
	assert.False(t, result.UsedDefaults)

	warnings := logger.GetEntriesByLevel("WARN")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "too permissive")
}

func TestRuleStore_LoadOrInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "category_db.json")
	s := NewRuleStore(path, logging.NewMockLogger())

	result, err := s.LoadOrInit()
	require.NoError(t, err)
	assert.True(t, result.UsedDefaults)
	require.FileExists(t, path)

	again, err := s.Load()
	require.NoError(t, err)
	assert.False(t, again.UsedDefaults)
	assert.Equal(t, NewDefaultCategoryDB(), again.DB)
}

func TestRuleStore_LoadOrInitKeepsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category_db.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	s := NewRuleStore(path, logging.NewMockLogger())
	result, err := s.LoadOrInit()
	require.NoError(t, err)
	assert.Error(t, result.Warning)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data))
}

func TestRuleStore_FindConfigFile(t *testing.T) {
	s := NewRuleStore("", logging.NewMockLogger())
	assert.Equal(t, DefaultRulesFile, s.File)

	path := filepath.Join(t.TempDir(), "rules.json")
	_, err := s.FindConfigFile(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))
	found, err := s.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}
