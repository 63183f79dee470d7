package persistence

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes the YAML file at filePath into out. Unknown keys are
// rejected so that misspelled table names surface as errors.
func LoadYAML(filePath string, out interface{}) error {
	file, err := os.Open(filePath) // #nosec G304 -- filePath comes from application config, not user input
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() { _ = file.Close() }()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to decode YAML from %s: %w", filePath, err)
	}
	return nil
}
