package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMappingsFile is the column-mapping config looked up alongside the
// project config.
const DefaultMappingsFile = "mappings.yaml"

// Mappings describes how source registries map onto the canonical column
// vocabulary the converter reads.
type Mappings struct {
	Version  int       `yaml:"version"`
	Datasets []Dataset `yaml:"datasets"`

	index map[string]*Dataset
}

// Dataset is one source registry: header renames, an optional output column
// subset, and columns a row must carry to survive subsetting.
type Dataset struct {
	Name     string            `yaml:"name"`
	Columns  map[string]string `yaml:"columns"`
	Subset   []string          `yaml:"subset"`
	Required []string          `yaml:"required"`
}

func LoadMappings(path string) (*Mappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading mappings: %w", err)
	}

	var m Mappings
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("loading mappings: %w", err)
	}

	if err := validateMappings(&m); err != nil {
		return nil, fmt.Errorf("loading mappings: %w", err)
	}

	m.index = make(map[string]*Dataset)
	for i := range m.Datasets {
		ds := &m.Datasets[i]
		m.index[strings.ToLower(ds.Name)] = ds
	}

	return &m, nil
}

func validateMappings(m *Mappings) error {
	if m.Version != 1 {
		return fmt.Errorf("unsupported version: %d", m.Version)
	}
	if len(m.Datasets) == 0 {
		return fmt.Errorf("at least one dataset is required")
	}

	seen := make(map[string]struct{})
	for i, ds := range m.Datasets {
		if strings.TrimSpace(ds.Name) == "" {
			return fmt.Errorf("dataset %d name is required", i)
		}
		key := strings.ToLower(ds.Name)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("duplicate dataset name: %s", ds.Name)
		}
		seen[key] = struct{}{}

		if len(ds.Columns) == 0 {
			return fmt.Errorf("dataset %s has no column mappings", ds.Name)
		}
		targets := make(map[string]string)
		for source, target := range ds.Columns {
			if strings.TrimSpace(target) == "" {
				return fmt.Errorf("dataset %s maps %q to an empty column", ds.Name, source)
			}
			if prev, dup := targets[target]; dup {
				return fmt.Errorf("dataset %s maps both %q and %q to %q", ds.Name, prev, source, target)
			}
			targets[target] = source
		}
		for _, col := range ds.Subset {
			if _, ok := targets[col]; !ok {
				return fmt.Errorf("dataset %s subset references unmapped column: %s", ds.Name, col)
			}
		}
		for _, col := range ds.Required {
			if _, ok := targets[col]; !ok {
				return fmt.Errorf("dataset %s required references unmapped column: %s", ds.Name, col)
			}
		}
	}

	return nil
}

// DatasetByName resolves a dataset mapping case-insensitively.
func (m *Mappings) DatasetByName(name string) (*Dataset, bool) {
	if m == nil {
		return nil, false
	}
	ds, ok := m.index[strings.ToLower(name)]
	return ds, ok
}
