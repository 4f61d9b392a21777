package reader

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DecodeFile reads a fixture file, decoding it to UTF-8 when a non-default
// text encoding is requested. encoding is an IANA charset name.
func DecodeFile(path, encoding string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if !isUTF8(encoding) {
		enc, err := ianaindex.IANA.Encoding(encoding)
		if err != nil || enc == nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("unknown text encoding %q", encoding)}
		}
		r = transform.NewReader(f, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return data, nil
}

func isUTF8(encoding string) bool {
	switch encoding {
	case "", "utf-8", "UTF-8", "utf8":
		return true
	}
	return false
}
