package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/txlabel/internal/fileutils"
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/validation"
)

// DefaultRulesFile is the rule database file name used when none is configured.
const DefaultRulesFile = "category_db.json"

// RuleStore manages loading and saving of the rule database file
type RuleStore struct {
	File   string
	logger logging.Logger
}

// NewRuleStore creates a store for the given rule database file
func NewRuleStore(file string, logger logging.Logger) *RuleStore {
	if file == "" {
		file = DefaultRulesFile
	}
	return &RuleStore{
		File:   file,
		logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "store"),
	}
}

// FindConfigFile looks for a rule file in standard locations
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "txlabel", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// Path returns the existing rule file if one is found, or the configured path otherwise.
func (s *RuleStore) Path() string {
	if path, err := s.FindConfigFile(s.File); err == nil {
		return path
	}
	return s.File
}

// Load reads the rule database. A malformed file falls back to the default
// rules; the returned LoadResult carries the reason and it is logged as a warning.
func (s *RuleStore) Load() (LoadResult, error) {
	path := s.Path()

	result, err := Load(path)
	if err != nil {
		return LoadResult{}, err
	}

	switch {
	case result.Warning != nil:
		s.logger.WithError(result.Warning).Warn("Rule database is invalid, using default rules",
			logging.Field{Key: logging.FieldFile, Value: path})
	case result.UsedDefaults:
		s.logger.Debug("Rule database not found, using default rules",
			logging.Field{Key: logging.FieldFile, Value: path})
	default:
		s.logger.Debug("Loaded rule database",
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: logging.FieldCount, Value: result.DB.Len()})
		s.checkPermissions(path)
	}

	return result, nil
}

func (s *RuleStore) checkPermissions(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if err := validation.RuleFilePermissions(info.Mode()); err != nil {
		s.logger.Warn(err.Error(), logging.Field{Key: logging.FieldFile, Value: path})
	}
}

// LoadOrInit loads the rule database and, when the file does not exist yet,
// writes the default rules to it. A malformed file is never overwritten.
func (s *RuleStore) LoadOrInit() (LoadResult, error) {
	result, err := s.Load()
	if err != nil {
		return LoadResult{}, err
	}
	if !result.UsedDefaults || result.Warning != nil {
		return result, nil
	}

	if err := s.SaveTo(result.DB, result.Path); err != nil {
		return LoadResult{}, fmt.Errorf("error initializing rule database: %w", err)
	}
	s.logger.Info("Initialized rule database with default rules",
		logging.Field{Key: logging.FieldFile, Value: result.Path},
		logging.Field{Key: logging.FieldCount, Value: result.DB.Len()})
	return result, nil
}

// Save writes db to the store's file.
func (s *RuleStore) Save(db *CategoryDB) error {
	return s.SaveTo(db, s.Path())
}

// SaveTo writes db to path, as YAML for .yaml/.yml paths and JSON otherwise.
// Parent directories are created as needed.
func (s *RuleStore) SaveTo(db *CategoryDB, path string) error {
	if db == nil {
		return errors.New("rule database is nil")
	}

	data, err := Marshal(db, FormatForPath(path))
	if err != nil {
		return err
	}

	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing rule database: %w", err)
	}

	s.logger.Debug("Saved rule database",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: db.Len()})
	return nil
}
