// Package fixtures resolves the test fixtures directory and provides
// read helpers for files inside it.
package fixtures

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnvDir overrides the default fixtures directory when set.
const EnvDir = "FIXT_FIXTURES_DIR"

// DefaultDir is the conventional fixtures location, relative to the
// working directory of the test process.
var DefaultDir = filepath.Join("tests", "fixtures")

// ResolveDir picks the fixtures base directory. Precedence: explicit
// override, then the FIXT_FIXTURES_DIR environment variable, then the
// tests/fixtures convention. The environment is read here, once per call;
// the readers and the normalizer never touch it.
func ResolveDir(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvDir); env != "" {
		return env
	}
	return DefaultDir
}

// Dir is a fixtures directory handle. The zero value is not useful; use
// Default or At.
type Dir struct {
	Base     string
	Encoding string // IANA charset name for text reads; empty means UTF-8
}

// Default returns a Dir at the resolved conventional location.
func Default() *Dir {
	return &Dir{Base: ResolveDir("")}
}

// At returns a Dir rooted at base.
func At(base string) *Dir {
	return &Dir{Base: base}
}

// WithEncoding returns a copy of d that reads text in the given encoding.
func (d *Dir) WithEncoding(encoding string) *Dir {
	return &Dir{Base: d.Base, Encoding: encoding}
}

// Join builds a path under the fixtures directory from components,
// without checking that it exists.
func (d *Dir) Join(parts ...string) string {
	return filepath.Join(append([]string{d.Base}, parts...)...)
}

// Path builds a path under the fixtures directory and verifies the target
// exists. The returned error matches errors.Is(err, fs.ErrNotExist).
func (d *Dir) Path(parts ...string) (string, error) {
	path := d.Join(parts...)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("fixture %s does not exist at %s: %w", filepath.Join(parts...), path, fs.ErrNotExist)
		}
		return "", fmt.Errorf("stat fixture: %w", err)
	}
	return path, nil
}
