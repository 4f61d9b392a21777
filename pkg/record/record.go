// Package record normalizes parsed fixture records into the uniform
// (field names, rows, ids) triple consumed by parametrized tests.
// It is pure data shaping: no file I/O, no knowledge of source formats.
package record

import (
	"fmt"
	"sort"
	"strings"
)

// IDField is the reserved field name. When every record carries it, its
// values become per-case identifiers and it is excluded from the
// parameter fields.
const IDField = "id"

// Set is a normalized record set.
type Set struct {
	Fields []string // parameter field names in canonical order (id excluded)
	Rows   [][]any  // one tuple per record, aligned to Fields
	IDs    []string // per-case identifiers; nil when the id field is absent
}

// FieldList returns the field names joined with commas, suitable as a
// parametrization argument-name declaration.
func (s *Set) FieldList() string {
	return strings.Join(s.Fields, ",")
}

// Len returns the number of cases in the set.
func (s *Set) Len() int {
	return len(s.Rows)
}

// DataError reports a malformed record set. File is the fixture it came from.
type DataError struct {
	File   string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("fixture %s: %s", e.File, e.Reason)
}

// Normalize validates a parsed record set and shapes it into a Set.
//
// fields is the first record's key order as encountered in the file; it is
// the canonical field order. Every record must have exactly the same key
// set (order-independent). When the canonical set contains IDField, its
// values are promoted to per-case identifiers and removed from the
// parameter fields. file is used in error messages only.
func Normalize(fields []string, records []map[string]any, file string) (*Set, error) {
	if len(records) == 0 {
		return nil, &DataError{File: file, Reason: "no records"}
	}
	if len(fields) == 0 {
		return nil, &DataError{File: file, Reason: "record has no fields"}
	}

	canonical := make(map[string]bool, len(fields))
	for _, f := range fields {
		if canonical[f] {
			return nil, &DataError{File: file, Reason: fmt.Sprintf("duplicate field %q", f)}
		}
		canonical[f] = true
	}

	for i, rec := range records {
		if err := sameKeySet(canonical, rec); err != nil {
			return nil, &DataError{File: file, Reason: fmt.Sprintf("record %d: %v", i+1, err)}
		}
	}

	set := promoteIDs(fields, records)
	if len(set.Fields) == 0 {
		return nil, &DataError{File: file, Reason: "records contain only the id field"}
	}
	return set, nil
}

// sameKeySet checks a record's keys against the canonical set, naming the
// first extra or missing field.
func sameKeySet(canonical map[string]bool, rec map[string]any) error {
	for key := range rec {
		if !canonical[key] {
			return fmt.Errorf("unexpected field %q", key)
		}
	}
	if len(rec) == len(canonical) {
		return nil
	}
	var missing []string
	for key := range canonical {
		if _, ok := rec[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return fmt.Errorf("missing field %q", missing[0])
}

// promoteIDs is the post-parse transform that lifts the reserved id field
// out of the parameter schema. It runs after the key-set check, so the id
// field is either on every record or on none.
func promoteIDs(fields []string, records []map[string]any) *Set {
	hasID := false
	params := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == IDField {
			hasID = true
			continue
		}
		params = append(params, f)
	}

	set := &Set{Fields: params, Rows: make([][]any, 0, len(records))}
	if hasID {
		set.IDs = make([]string, 0, len(records))
	}
	for _, rec := range records {
		row := make([]any, len(params))
		for i, f := range params {
			row[i] = rec[f]
		}
		set.Rows = append(set.Rows, row)
		if hasID {
			set.IDs = append(set.IDs, CoerceString(rec[IDField]))
		}
	}
	return set
}

// CoerceString renders a record value as text. Identifier values keep
// their literal form; nil becomes the empty string.
func CoerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
