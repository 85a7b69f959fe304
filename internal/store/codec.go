package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/txlabel/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// Format is the serialization used for a rule database file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const expectedShape = "object with array fields descriptions, business_labels, retailer_labels"

// FormatForPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// document is the on-disk shape. Pointers distinguish an absent field from an empty list.
type document struct {
	Descriptions   *[]string `json:"descriptions" yaml:"descriptions"`
	BusinessLabels *[]string `json:"business_labels" yaml:"business_labels"`
	RetailerLabels *[]string `json:"retailer_labels" yaml:"retailer_labels"`
}

// canonical is what Marshal writes: exactly the three fields, never null.
type canonical struct {
	Descriptions   []string `json:"descriptions" yaml:"descriptions"`
	BusinessLabels []string `json:"business_labels" yaml:"business_labels"`
	RetailerLabels []string `json:"retailer_labels" yaml:"retailer_labels"`
}

// Parse decodes a rule database. Unknown fields are ignored. It returns an
// InvalidFormatError for undecodable input or absent fields and an
// IntegrityError when the sequences differ in length.
func Parse(data []byte, format Format, source string) (*CategoryDB, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: string(format),
			Msg:            "cannot decode rule database",
			Err:            err,
		}
	}

	var missing []string
	if doc.Descriptions == nil {
		missing = append(missing, "descriptions")
	}
	if doc.BusinessLabels == nil {
		missing = append(missing, "business_labels")
	}
	if doc.RetailerLabels == nil {
		missing = append(missing, "retailer_labels")
	}
	if len(missing) > 0 {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       source,
			ExpectedFormat: expectedShape,
			Msg:            "missing " + strings.Join(missing, ", "),
		}
	}

	db := &CategoryDB{
		Descriptions:   *doc.Descriptions,
		BusinessLabels: *doc.BusinessLabels,
		RetailerLabels: *doc.RetailerLabels,
	}
	if err := db.Validate(); err != nil {
		return nil, err
	}
	return db, nil
}

// Marshal encodes db in the given format. Content is written as is, without validation.
func Marshal(db *CategoryDB, format Format) ([]byte, error) {
	out := canonical{
		Descriptions:   nonNil(db.Descriptions),
		BusinessLabels: nonNil(db.BusinessLabels),
		RetailerLabels: nonNil(db.RetailerLabels),
	}

	if format == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return nil, fmt.Errorf("error marshaling rule database: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("error marshaling rule database: %w", err)
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling rule database: %w", err)
	}
	return append(data, '\n'), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
