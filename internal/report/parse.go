package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a report file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a user-provided report path
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return Parse(data)
}

// Parse parses report YAML content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing report YAML: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("unsupported report version: %d (expected 1)", f.Version)
	}
	return &f, nil
}

// Save writes the report to disk.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // report needs to be readable
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
