package reader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ormasoftchile/fixt/pkg/record"
)

// readJSONL decodes a JSON Lines fixture: one JSON object per non-blank
// line. Blank lines are skipped.
func readJSONL(path, encoding string) ([]string, []map[string]any, error) {
	data, err := DecodeFile(path, encoding)
	if err != nil {
		return nil, nil, err
	}

	var fields []string
	var records []map[string]any
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var item any
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("line %d: malformed JSON: %v", n+1, err)}
		}
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("line %d: not an object (got %T)", n+1, item)}
		}

		if records == nil {
			fields, err = firstObjectKeys([]byte(line), false)
			if err != nil {
				return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("line %d: %v", n+1, err)}
			}
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, nil, &record.DataError{File: path, Reason: "contains no records"}
	}
	return fields, records, nil
}
