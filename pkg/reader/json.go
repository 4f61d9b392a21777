package reader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ormasoftchile/fixt/pkg/record"
)

// readJSON decodes a JSON fixture. The file must hold a top-level array of
// objects. Values keep their parsed types (numbers, booleans, null, nested
// structures).
func readJSON(path, encoding string) ([]string, []map[string]any, error) {
	data, err := DecodeFile(path, encoding)
	if err != nil {
		return nil, nil, err
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("must contain a JSON list of objects: %v", err)}
	}

	records, err := objectRecords(items, path)
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, &record.DataError{File: path, Reason: "contains an empty list"}
	}

	// encoding/json decodes objects into unordered maps; recover the first
	// object's declared key order with a token scan so the canonical field
	// order matches the file.
	fields, err := firstObjectKeys(data, true)
	if err != nil {
		return nil, nil, &record.DataError{File: path, Reason: err.Error()}
	}
	return fields, records, nil
}

// objectRecords asserts every list element is an object.
func objectRecords(items []any, path string) ([]map[string]any, error) {
	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, &record.DataError{File: path, Reason: fmt.Sprintf("element %d is not an object (got %T)", i+1, item)}
		}
		records = append(records, rec)
	}
	return records, nil
}

// firstObjectKeys walks JSON tokens and collects the keys of the first
// object, in declaration order. When inArray is true the object is the
// first element of a top-level array.
func firstObjectKeys(data []byte, inArray bool) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if inArray {
		if _, err := dec.Token(); err != nil { // opening '['
			return nil, fmt.Errorf("scan keys: %w", err)
		}
	}
	tok, err := dec.Token() // opening '{'
	if err != nil {
		return nil, fmt.Errorf("scan keys: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("scan keys: expected object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("scan keys: %w", err)
		}
		keys = append(keys, tok.(string))
		if err := skipValue(dec); err != nil {
			return nil, fmt.Errorf("scan keys: %w", err)
		}
	}
	return keys, nil
}

// skipValue consumes one JSON value, descending into nested containers.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || d == '}' || d == ']' {
		return nil
	}
	for dec.More() {
		if d == '{' {
			if _, err := dec.Token(); err != nil { // key
				return err
			}
		}
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing delimiter
	return err
}
