package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ormasoftchile/fixt/pkg/record"
)

// readCSV decodes a CSV fixture. The first row is the header; every data
// row becomes one record with all values kept as strings.
func readCSV(path, encoding string) ([]string, []map[string]any, error) {
	data, err := DecodeFile(path, encoding)
	if err != nil {
		return nil, nil, err
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, nil, &record.DataError{File: path, Reason: fmt.Sprintf("malformed CSV: %v", err)}
	}
	if len(rows) == 0 {
		return nil, nil, &record.DataError{File: path, Reason: "CSV file has no header row"}
	}

	header := rows[0]
	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(header))
		for i, field := range header {
			rec[field] = row[i]
		}
		records = append(records, rec)
	}
	return header, records, nil
}
