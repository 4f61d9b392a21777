//go:build !noyaml

package reader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ormasoftchile/fixt/pkg/record"
)

// readYAML decodes a YAML fixture. The document must hold a top-level
// sequence of mappings. Decoding goes through yaml.Node so mapping key
// order is preserved; only safe construction is performed.
func readYAML(path, encoding string) ([]string, []map[string]any, error) {
	data, err := DecodeFile(path, encoding)
	if err != nil {
		return nil, nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("malformed YAML: %v", err)}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, &record.DataError{File: path, Reason: "contains an empty document"}
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, nil, &record.DataError{File: path, Reason: "must contain a list of mappings"}
	}

	var fields []string
	records := make([]map[string]any, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind == yaml.AliasNode {
			item = item.Alias
		}
		if item.Kind != yaml.MappingNode {
			return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("element %d is not a mapping", i+1)}
		}

		rec := make(map[string]any, len(item.Content)/2)
		for j := 0; j+1 < len(item.Content); j += 2 {
			key := item.Content[j].Value
			var value any
			if err := item.Content[j+1].Decode(&value); err != nil {
				return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("element %d, key %q: %v", i+1, key, err)}
			}
			rec[key] = value
			if i == 0 {
				fields = append(fields, key)
			}
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, nil, &record.DataError{File: path, Reason: "contains an empty list"}
	}
	return fields, records, nil
}

// UnmarshalYAML parses YAML into v. It exists so callers outside this
// package share the optional-dependency switch with the YAML reader.
func UnmarshalYAML(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// YAMLAvailable reports whether YAML support was compiled in.
func YAMLAvailable() bool { return true }
