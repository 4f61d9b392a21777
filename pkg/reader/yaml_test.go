//go:build !noyaml

package reader

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ormasoftchile/fixt/pkg/record"
)

func TestReadYAML(t *testing.T) {
	path := writeFixture(t, "data.yaml", `
- id: alice
  a: 10
  b: 20
  c: 30
- id: bob
  a: 5
  b: 20
  c: 25
`)

	set, err := Read(path, FormatAuto, "")
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if set.FieldList() != "a,b,c" {
		t.Errorf("fields = %q, want a,b,c", set.FieldList())
	}
	if !reflect.DeepEqual(set.IDs, []string{"alice", "bob"}) {
		t.Errorf("ids = %v, want [alice bob]", set.IDs)
	}
	if !reflect.DeepEqual(set.Rows[0], []any{10, 20, 30}) {
		t.Errorf("row 0 = %v, want native ints", set.Rows[0])
	}
}

func TestReadYAMLKeyOrderFollowsFile(t *testing.T) {
	path := writeFixture(t, "data.yml", "- zeta: 1\n  alpha: 2\n")

	set, err := Read(path, FormatAuto, "")
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if set.FieldList() != "zeta,alpha" {
		t.Errorf("fields = %q, want declaration order zeta,alpha", set.FieldList())
	}
}

func TestReadYAMLNotAList(t *testing.T) {
	path := writeFixture(t, "data.yaml", "x: 1\n")

	_, err := Read(path, FormatYAML, "")
	var derr *record.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestReadYAMLNonMappingElement(t *testing.T) {
	path := writeFixture(t, "data.yaml", "- x: 1\n- 5\n")

	_, err := Read(path, FormatYAML, "")
	var derr *record.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestReadYAMLMalformed(t *testing.T) {
	path := writeFixture(t, "data.yaml", "- a: [unclosed\n")

	_, err := Read(path, FormatYAML, "")
	var derr *record.DataError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DataError, got %v", err)
	}
}

func TestYAMLAvailable(t *testing.T) {
	if !YAMLAvailable() {
		t.Error("YAML support should be compiled in by default")
	}
}
