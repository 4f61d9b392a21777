// Package parametrize expands fixture files into parametrized test cases.
// A fixture file (CSV, JSON, JSON Lines, or YAML) becomes one subtest per
// record; the normalization core never references the testing package, so
// other hosts can drive the same sets through the Registrar seam.
package parametrize

import (
	"fmt"
	"strconv"

	"github.com/ormasoftchile/fixt/pkg/fixtures"
	"github.com/ormasoftchile/fixt/pkg/reader"
	"github.com/ormasoftchile/fixt/pkg/record"
)

// Config controls how a fixture is loaded. The zero value auto-detects
// the format, reads UTF-8, and resolves the fixtures directory by
// convention.
type Config struct {
	Format   reader.Format // explicit format; empty or FormatAuto detects from extension
	Encoding string        // IANA charset name; empty means UTF-8
	Dir      string        // fixtures directory override
	IDs      []string      // explicit case ids; take precedence over file-derived ones
	Where    string        // expr filter; keeps only rows where it evaluates true
}

// Load reads and normalizes a fixture, then applies the Where filter and
// explicit-ID precedence. fixture is a path relative to the resolved
// fixtures directory.
func Load(fixture string, cfg Config) (*record.Set, error) {
	path := fixtures.At(fixtures.ResolveDir(cfg.Dir)).Join(fixture)

	set, err := reader.Read(path, cfg.Format, cfg.Encoding)
	if err != nil {
		return nil, err
	}

	if cfg.Where != "" {
		set, err = filterSet(set, cfg.Where)
		if err != nil {
			return nil, err
		}
	}

	if cfg.IDs != nil {
		if len(cfg.IDs) != set.Len() {
			return nil, &reader.ConfigError{
				Reason: fmt.Sprintf("%d explicit ids for %d cases in %s", len(cfg.IDs), set.Len(), fixture),
			}
		}
		set.IDs = cfg.IDs
	}
	return set, nil
}

// Registrar receives one call per test case. It is the only seam between
// normalized sets and a host test framework.
type Registrar interface {
	Register(id string, args Args)
}

// Each feeds every case of a set to a registrar. Case ids come from the
// set; when absent, the decimal row index is used.
func Each(set *record.Set, reg Registrar) {
	for i, row := range set.Rows {
		id := strconv.Itoa(i)
		if set.IDs != nil {
			id = set.IDs[i]
		}
		reg.Register(id, Args{fields: set.Fields, values: row})
	}
}
