package parametrize

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/ormasoftchile/fixt/pkg/reader"
	"github.com/ormasoftchile/fixt/pkg/record"
)

// filterSet keeps only the rows for which the expression evaluates true.
// The expression sees each row's fields as variables, plus "id" when the
// set carries identifiers. It is compiled once per fixture.
func filterSet(set *record.Set, src string) (*record.Set, error) {
	program, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, &reader.ConfigError{Reason: fmt.Sprintf("compile filter %q: %v", src, err)}
	}

	out := &record.Set{Fields: set.Fields}
	if set.IDs != nil {
		out.IDs = []string{}
	}
	for i, row := range set.Rows {
		env := make(map[string]any, len(set.Fields)+1)
		for j, f := range set.Fields {
			env[f] = row[j]
		}
		if set.IDs != nil {
			env[record.IDField] = set.IDs[i]
		}

		keep, err := expr.Run(program, env)
		if err != nil {
			return nil, &reader.ConfigError{Reason: fmt.Sprintf("eval filter %q on row %d: %v", src, i+1, err)}
		}
		if keep.(bool) {
			out.Rows = append(out.Rows, row)
			if set.IDs != nil {
				out.IDs = append(out.IDs, set.IDs[i])
			}
		}
	}
	return out, nil
}
