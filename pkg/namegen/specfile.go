package namegen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/onomast-labs/onomast/pkg/core"
)

// LoadSpec reads and validates a language spec from a YAML file.
func LoadSpec(path string) (core.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Spec{}, fmt.Errorf("failed to read language file: %w", err)
	}

	var spec core.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return core.Spec{}, fmt.Errorf("failed to parse language file %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return core.Spec{}, fmt.Errorf("language file %s: %w", path, err)
	}
	return spec, nil
}

// SaveSpec writes a language spec to a YAML file.
func SaveSpec(path string, spec core.Spec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to encode language spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write language file: %w", err)
	}
	return nil
}
