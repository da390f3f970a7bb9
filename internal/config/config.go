package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (KARATY_*).
func Load(path string) (*Config, error) {
	// Page names under the pages table contain dots ("about.md"), so the
	// key delimiter must be something that never appears in a key.
	k := koanf.New("::")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: KARATY_OUTPUT_DIR -> output_dir. A
	// double underscore descends into nested tables, so KARATY_SITE__NAME
	// addresses site::name.
	if err := k.Load(env.Provider("KARATY_", "::", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "KARATY_"))
		return strings.ReplaceAll(s, "__", "::")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values. Exactly one
// sourcing mode is active, and the data_source.data payload must match it.
func (c *Config) Validate() error {
	if c.Site.Name == "" {
		return fmt.Errorf("site.name is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}

	switch strings.ToLower(c.DataSource.Mode) {
	case ModeIndependentRepository:
		data, ok := c.DataSource.Data.(map[string]any)
		if !ok {
			return fmt.Errorf("data_source.data must be a {service, name, branch} table in %s mode", ModeIndependentRepository)
		}
		for _, field := range []string{"service", "name", "branch"} {
			if v, ok := data[field].(string); !ok || v == "" {
				return fmt.Errorf("data_source.data.%s is required in %s mode", field, ModeIndependentRepository)
			}
		}
	case ModeSubPath:
		if folder, ok := c.DataSource.Data.(string); !ok || folder == "" {
			return fmt.Errorf("data_source.data must be a sub-folder name in %s mode", ModeSubPath)
		}
		if c.Repository.Service == "" || c.Repository.Name == "" || c.Repository.Branch == "" {
			return fmt.Errorf("repository.service, repository.name and repository.branch are required in %s mode", ModeSubPath)
		}
	case "":
		return fmt.Errorf("data_source.mode is required")
	default:
		return fmt.Errorf("invalid data_source.mode %q: must be %s or %s", c.DataSource.Mode, ModeIndependentRepository, ModeSubPath)
	}

	return nil
}
