//go:build noyaml

package reader

// Builds tagged noyaml drop gopkg.in/yaml.v3 from the binary. YAML
// fixtures then fail with a missing-dependency error instead of a parse
// attempt.

func yamlMissing() *MissingDependencyError {
	return &MissingDependencyError{
		Library: "gopkg.in/yaml.v3",
		URL:     "https://pkg.go.dev/gopkg.in/yaml.v3",
	}
}

func readYAML(path, encoding string) ([]string, []map[string]any, error) {
	return nil, nil, yamlMissing()
}

// UnmarshalYAML always fails under the noyaml tag.
func UnmarshalYAML(data []byte, v any) error {
	return yamlMissing()
}

// YAMLAvailable reports whether YAML support was compiled in.
func YAMLAvailable() bool { return false }
