package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".shieldsvg.yml"

// Config is the top-level shieldsvg configuration.
type Config struct {
	Defaults BadgeDefaults `yaml:"defaults" toml:"defaults"`
	Items    []BadgeItem   `yaml:"badges" toml:"badges"`
}

// Load reads configuration from a YAML or TOML file, picked by extension.
// If path is empty, it tries the default file.
// Returns sensible defaults if the default file doesn't exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Format names a config file syntax.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// Parse decodes data on top of the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := defaults()
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, cfg)
	case YAML, "":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg in the given format.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case TOML:
		return toml.Marshal(cfg)
	case YAML, "":
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("unknown config format %q", format)
}

func defaults() *Config {
	return &Config{
		Defaults: DefaultBadgeDefaults(),
	}
}

// Find returns the item with the given name.
func (c *Config) Find(name string) (BadgeItem, bool) {
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return BadgeItem{}, false
}
