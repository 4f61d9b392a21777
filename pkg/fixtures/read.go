package fixtures

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ormasoftchile/fixt/pkg/reader"
)

// ReadBytes returns a fixture file's raw contents.
func (d *Dir) ReadBytes(parts ...string) ([]byte, error) {
	path, err := d.Path(parts...)
	if err != nil {
		return nil, err
	}
	return reader.DecodeFile(path, "")
}

// ReadText returns a fixture file's contents as a string, decoded with the
// Dir's encoding.
func (d *Dir) ReadText(parts ...string) (string, error) {
	path, err := d.Path(parts...)
	if err != nil {
		return "", err
	}
	data, err := reader.DecodeFile(path, d.Encoding)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Read reads a fixture file and applies a custom deserialize function to
// its contents.
func (d *Dir) Read(deserialize func([]byte) (any, error), parts ...string) (any, error) {
	path, err := d.Path(parts...)
	if err != nil {
		return nil, err
	}
	data, err := reader.DecodeFile(path, d.Encoding)
	if err != nil {
		return nil, err
	}
	return deserialize(data)
}

// ReadJSON parses a JSON fixture into v.
func (d *Dir) ReadJSON(v any, parts ...string) error {
	data, err := d.ReadBytes(parts...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse JSON fixture %s: %w", d.Join(parts...), err)
	}
	return nil
}

// ReadJSONL parses a JSON Lines fixture: one object per non-blank line.
func (d *Dir) ReadJSONL(parts ...string) ([]map[string]any, error) {
	data, err := d.ReadBytes(parts...)
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("parse JSONL fixture %s line %d: %w", d.Join(parts...), n+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadCSV parses a CSV fixture into raw rows, header included. All values
// are strings.
func (d *Dir) ReadCSV(parts ...string) ([][]string, error) {
	data, err := d.ReadBytes(parts...)
	if err != nil {
		return nil, err
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV fixture %s: %w", d.Join(parts...), err)
	}
	return rows, nil
}

// ReadCSVDict parses a CSV fixture with a header row into one map per
// data row.
func (d *Dir) ReadCSVDict(parts ...string) ([]map[string]string, error) {
	rows, err := d.ReadCSV(parts...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV fixture %s has no header row", d.Join(parts...))
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, field := range header {
			rec[field] = row[i]
		}
		out = append(out, rec)
	}
	return out, nil
}

// ReadYAML parses a YAML fixture into v. Fails with a missing-dependency
// error when YAML support is compiled out.
func (d *Dir) ReadYAML(v any, parts ...string) error {
	data, err := d.ReadBytes(parts...)
	if err != nil {
		return err
	}
	if err := reader.UnmarshalYAML(data, v); err != nil {
		return fmt.Errorf("parse YAML fixture %s: %w", d.Join(parts...), err)
	}
	return nil
}
