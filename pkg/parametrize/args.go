package parametrize

import (
	"fmt"
	"strconv"

	"github.com/ormasoftchile/fixt/pkg/record"
)

// Args is one test case's values bound to its field names.
type Args struct {
	fields []string
	values []any
}

// Get returns the raw value of a field, or nil when the field is unknown.
func (a Args) Get(name string) any {
	for i, f := range a.fields {
		if f == name {
			return a.values[i]
		}
	}
	return nil
}

// Has reports whether the field exists in this case.
func (a Args) Has(name string) bool {
	for _, f := range a.fields {
		if f == name {
			return true
		}
	}
	return false
}

// String returns a field's value as text. CSV values come back verbatim;
// other types are rendered with their literal form.
func (a Args) String(name string) string {
	return record.CoerceString(a.Get(name))
}

// Int converts a field's value to int. Strings are parsed, which covers
// CSV fixtures; JSON and YAML numbers convert directly.
func (a Args) Int(name string) (int, error) {
	switch v := a.Get(name).(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", name, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("field %q: cannot convert %T to int", name, v)
	}
}

// Float converts a field's value to float64.
func (a Args) Float(name string) (float64, error) {
	switch v := a.Get(name).(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", name, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q: cannot convert %T to float", name, v)
	}
}

// Bool converts a field's value to bool. Strings accept the strconv forms
// ("true", "1", ...).
func (a Args) Bool(name string) (bool, error) {
	switch v := a.Get(name).(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("field %q: %w", name, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("field %q: cannot convert %T to bool", name, v)
	}
}

// Map returns the case as a field-to-value map.
func (a Args) Map() map[string]any {
	m := make(map[string]any, len(a.fields))
	for i, f := range a.fields {
		m[f] = a.values[i]
	}
	return m
}

// Fields returns the field names in canonical order.
func (a Args) Fields() []string {
	return a.fields
}
