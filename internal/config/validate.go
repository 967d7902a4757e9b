package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValidateYAMLSyntax checks that a file parses as YAML before koanf loads
// it, so syntax problems surface with the file path attached.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}
