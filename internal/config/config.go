package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"wrecklore/internal/linkedart"
)

// DefaultFile is the project config looked up in the working directory.
const DefaultFile = "wrecklore.yaml"

type ProjectConfig struct {
	Project    string         `yaml:"project"`
	Version    int            `yaml:"version"`
	BaseURI    string         `yaml:"base_uri"`
	Context    string         `yaml:"context"`
	SampleSize int            `yaml:"sample_size"`
	Region     RegionConfig   `yaml:"region"`
	Database   DatabaseConfig `yaml:"database"`
}

// RegionConfig names the parent place attached to every shipwreck site.
type RegionConfig struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// Default returns the configuration used when no wrecklore.yaml exists.
// Conversion works without a project file; catalog commands do not.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Project:    "shipwrecks",
		Version:    1,
		BaseURI:    "https://example.org/shipwrecks",
		Context:    linkedart.Context,
		SampleSize: 50,
		Region:     RegionConfig{Name: "New Jersey", Slug: "new-jersey"},
	}
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	// Only presentation knobs default; identity fields must be explicit.
	if strings.TrimSpace(cfg.Context) == "" {
		cfg.Context = linkedart.Context
	}
	if cfg.SampleSize == 0 {
		cfg.SampleSize = 50
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

// LoadProjectConfigOrDefault reads the project config when present and falls
// back to Default when the file does not exist.
func LoadProjectConfigOrDefault(path string) (*ProjectConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadProjectConfig(path)
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.BaseURI) == "" {
		return fmt.Errorf("base_uri is required")
	}
	if strings.HasSuffix(cfg.BaseURI, "/") {
		return fmt.Errorf("base_uri must not end with a slash")
	}
	if strings.TrimSpace(cfg.Context) == "" {
		return fmt.Errorf("context is required")
	}
	if cfg.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive")
	}
	if (cfg.Region.Name == "") != (cfg.Region.Slug == "") {
		return fmt.Errorf("region requires both name and slug")
	}
	return nil
}
