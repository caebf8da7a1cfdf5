package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a catalog file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Source = path

	return f, nil
}

// LoadFiles loads every path in order into one Catalog.
func LoadFiles(paths ...string) (*Catalog, error) {
	c := &Catalog{}

	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}

		c.Files = append(c.Files, f)
	}

	return c, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in the version and trims every name.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	f.Country = strings.TrimSpace(f.Country)
	f.Region = strings.TrimSpace(f.Region)

	for i := range f.Districts {
		d := &f.Districts[i]
		d.Name = strings.TrimSpace(d.Name)
		d.Headquarters = strings.TrimSpace(d.Headquarters)
		d.Region = strings.TrimSpace(d.Region)

		for j := range d.Aliases {
			d.Aliases[j] = strings.TrimSpace(d.Aliases[j])
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}
