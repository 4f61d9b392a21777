// Package reader loads fixture files in the four supported formats
// (CSV, JSON, JSON Lines, YAML) and normalizes them into record sets.
// The dispatcher picks a reader from an explicit format tag or from the
// file extension.
package reader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ormasoftchile/fixt/pkg/record"
)

// Format selects a fixture file format. Tags are case-sensitive.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ConfigError reports a bad format tag, an undetectable extension, or an
// unknown text encoding.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// MissingDependencyError reports that a reader's parsing library was not
// compiled into this binary.
type MissingDependencyError struct {
	Library string
	URL     string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing dependency %s (see %s)", e.Library, e.URL)
}

// Detect infers the format from a file name's extension. The comparison is
// case-insensitive. Unrecognized extensions are a configuration error.
func Detect(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonl":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &ConfigError{Reason: fmt.Sprintf("cannot auto-detect format for file: %s", name)}
	}
}

// Read loads and normalizes the fixture at path. format may be FormatAuto,
// in which case the extension decides. encoding is an IANA charset name;
// empty or "utf-8" reads the file as-is.
func Read(path string, format Format, encoding string) (*record.Set, error) {
	if format == FormatAuto || format == "" {
		detected, err := Detect(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture does not exist at %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat fixture: %w", err)
	}

	var (
		fields  []string
		records []map[string]any
		err     error
	)
	switch format {
	case FormatCSV:
		fields, records, err = readCSV(path, encoding)
	case FormatJSON:
		fields, records, err = readJSON(path, encoding)
	case FormatJSONL:
		fields, records, err = readJSONL(path, encoding)
	case FormatYAML:
		fields, records, err = readYAML(path, encoding)
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unsupported file format: %s", format)}
	}
	if err != nil {
		return nil, err
	}

	return record.Normalize(fields, records, path)
}
