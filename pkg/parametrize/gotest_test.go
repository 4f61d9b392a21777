package parametrize

import "testing"

// The sum fixtures all satisfy a + b == c, one subtest per record.

func TestRunCSV(t *testing.T) {
	invocations := 0
	RunWith(t, "sum.csv", Config{Dir: "testdata"}, func(t *testing.T, args Args) {
		invocations++
		a, err := args.Int("a")
		if err != nil {
			t.Fatal(err)
		}
		b, err := args.Int("b")
		if err != nil {
			t.Fatal(err)
		}
		c, err := args.Int("c")
		if err != nil {
			t.Fatal(err)
		}
		if a+b != c {
			t.Errorf("%d + %d != %d", a, b, c)
		}
	})
	if invocations != 2 {
		t.Errorf("invocations = %d, want 2", invocations)
	}
}

func TestRunJSONWithIDs(t *testing.T) {
	seen := map[string]bool{}
	RunWith(t, "sum.json", Config{Dir: "testdata"}, func(t *testing.T, args Args) {
		// Subtest names carry the promoted ids.
		seen[t.Name()] = true
		a, _ := args.Float("a")
		b, _ := args.Float("b")
		c, _ := args.Float("c")
		if a+b != c {
			t.Errorf("%v + %v != %v", a, b, c)
		}
		if args.Has("id") {
			t.Error("id should not be a parameter")
		}
	})
	if !seen["TestRunJSONWithIDs/small"] || !seen["TestRunJSONWithIDs/large"] {
		t.Errorf("subtests = %v, want ids small and large", seen)
	}
}

func TestRunYAML(t *testing.T) {
	RunWith(t, "sum.yaml", Config{Dir: "testdata"}, func(t *testing.T, args Args) {
		a, err := args.Int("a")
		if err != nil {
			t.Fatal(err)
		}
		b, err := args.Int("b")
		if err != nil {
			t.Fatal(err)
		}
		c, err := args.Int("c")
		if err != nil {
			t.Fatal(err)
		}
		if a+b != c {
			t.Errorf("%d + %d != %d", a, b, c)
		}
	})
}

func TestRunJSONL(t *testing.T) {
	invocations := 0
	RunWith(t, "events.jsonl", Config{Dir: "testdata"}, func(t *testing.T, args Args) {
		invocations++
		if args.String("user") == "" {
			t.Error("empty user")
		}
	})
	if invocations != 3 {
		t.Errorf("invocations = %d, want 3", invocations)
	}
}

func TestRunWithWhere(t *testing.T) {
	invocations := 0
	RunWith(t, "events.jsonl", Config{Dir: "testdata", Where: `action == "login"`}, func(t *testing.T, args Args) {
		invocations++
	})
	if invocations != 2 {
		t.Errorf("invocations = %d, want 2", invocations)
	}
}

func TestRunWithExplicitIDs(t *testing.T) {
	seen := map[string]bool{}
	cfg := Config{Dir: "testdata", IDs: []string{"first", "second"}}
	RunWith(t, "sum.json", cfg, func(t *testing.T, args Args) {
		seen[t.Name()] = true
	})
	if !seen["TestRunWithExplicitIDs/first"] || !seen["TestRunWithExplicitIDs/second"] {
		t.Errorf("subtests = %v, want explicit ids", seen)
	}
}

func TestRunDefaultDirFromEnv(t *testing.T) {
	t.Setenv("FIXT_FIXTURES_DIR", "testdata")

	invocations := 0
	Run(t, "sum.csv", func(t *testing.T, args Args) {
		invocations++
	})
	if invocations != 2 {
		t.Errorf("invocations = %d, want 2", invocations)
	}
}
