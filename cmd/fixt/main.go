// Package main provides the fixt binary — inspect and validate
// data-driven test fixture files.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ormasoftchile/fixt/pkg/fixtures"
	"github.com/ormasoftchile/fixt/pkg/parametrize"
	"github.com/ormasoftchile/fixt/pkg/reader"
	"github.com/ormasoftchile/fixt/pkg/record"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fixt",
	Short: "Data-driven test fixture tool",
	Long:  "fixt — load, validate, and preview CSV/JSON/JSONL/YAML test fixture files.",
}

var (
	flagDir      string
	flagFormat   string
	flagEncoding string
)

// loadArg loads one fixture named on the command line. Paths containing a
// separator are taken as-is; bare names resolve under the fixtures
// directory.
func loadArg(name, where string) (*record.Set, error) {
	cfg := parametrize.Config{
		Format:   reader.Format(flagFormat),
		Encoding: flagEncoding,
		Dir:      flagDir,
		Where:    where,
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		cfg.Dir = filepath.Dir(name)
		name = filepath.Base(name)
	}
	return parametrize.Load(name, cfg)
}

// --- validate ---

var validateCmd = &cobra.Command{
	Use:   "validate [fixture]",
	Short: "Validate a fixture file and report its shape",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	set, err := loadArg(args[0], "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		return fmt.Errorf("%s failed validation", args[0])
	}

	ids := "no"
	if set.IDs != nil {
		ids = "yes"
	}
	fmt.Printf("✓ %s is valid (%d cases, fields %s, ids: %s)\n", args[0], set.Len(), set.FieldList(), ids)
	return nil
}

// --- show ---

var (
	showWhere string
	showJSON  bool
	showLimit int
)

var showCmd = &cobra.Command{
	Use:   "show [fixture]",
	Short: "Print a fixture's normalized cases",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	set, err := loadArg(args[0], showWhere)
	if err != nil {
		return err
	}

	rows := set.Rows
	ids := set.IDs
	if showLimit > 0 && showLimit < len(rows) {
		rows = rows[:showLimit]
		if ids != nil {
			ids = ids[:showLimit]
		}
	}

	if showJSON {
		out := map[string]any{
			"fields": set.Fields,
			"rows":   rows,
		}
		if ids != nil {
			out["ids"] = ids
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	headers := set.Fields
	if ids != nil {
		headers = append([]string{record.IDField}, headers...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for i, row := range rows {
		cells := make([]string, 0, len(headers))
		if ids != nil {
			cells = append(cells, ids[i])
		}
		for _, v := range row {
			cells = append(cells, record.CoerceString(v))
		}
		t.Row(cells...)
	}
	fmt.Println(t)
	fmt.Printf("%d case(s)\n", len(rows))
	return nil
}

// --- list ---

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List fixture files under the fixtures directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dir := flagDir
	if len(args) == 1 {
		dir = args[0]
	}
	dir = fixtures.ResolveDir(dir)

	var names []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, err := reader.Detect(path); err == nil {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(names)

	for _, path := range names {
		format, _ := reader.Detect(path)
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		set, err := reader.Read(path, format, flagEncoding)
		if err != nil {
			fmt.Printf("  %-30s %-6s (invalid: %v)\n", rel, format, err)
			continue
		}
		fmt.Printf("  %-30s %-6s %d case(s)\n", rel, format, set.Len())
	}
	if len(names) == 0 {
		fmt.Printf("no fixture files under %s\n", dir)
	}
	return nil
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fixt %s (build: %s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Fixtures directory (default: $FIXT_FIXTURES_DIR or tests/fixtures)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto", "File format: csv, json, jsonl, yaml, or auto")
	rootCmd.PersistentFlags().StringVar(&flagEncoding, "encoding", "", "Text encoding (IANA name, default UTF-8)")

	showCmd.Flags().StringVar(&showWhere, "where", "", "Filter rows with an expression, e.g. 'x > 2'")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the normalized set as JSON")
	showCmd.Flags().IntVar(&showLimit, "limit", 0, "Show at most N cases (0 = all)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
