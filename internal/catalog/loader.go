package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinitionFile reads a catalog definition from a YAML (or JSON) file.
// The result still has to go through New to be validated.
func LoadDefinitionFile(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return Definition{}, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return def, nil
}
