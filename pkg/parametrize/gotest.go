package parametrize

import "testing"

// Func is a parametrized test body. It runs once per fixture record.
type Func func(t *testing.T, args Args)

// Run expands fn into one subtest per record of the named fixture, with
// default loading (auto-detected format, conventional fixtures directory).
func Run(t *testing.T, fixture string, fn Func) {
	t.Helper()
	RunWith(t, fixture, Config{}, fn)
}

// RunWith is Run with explicit load configuration. Any load error fails
// the calling test immediately: a broken fixture aborts collection rather
// than silently skipping cases.
func RunWith(t *testing.T, fixture string, cfg Config, fn Func) {
	t.Helper()
	set, err := Load(fixture, cfg)
	if err != nil {
		t.Fatalf("parametrize %s: %v", fixture, err)
	}
	Each(set, &testRegistrar{t: t, fn: fn})
}

// testRegistrar adapts the Registrar seam to testing subtests.
type testRegistrar struct {
	t  *testing.T
	fn Func
}

func (r *testRegistrar) Register(id string, args Args) {
	r.t.Run(id, func(t *testing.T) {
		r.fn(t, args)
	})
}
