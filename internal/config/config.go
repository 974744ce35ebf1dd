package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"scene-designer/internal/catalog"
	"scene-designer/internal/droptarget"
	"scene-designer/internal/job"
)

// ErrInvalid is returned for configuration values out of range.
var ErrInvalid = errors.New("invalid configuration")

// Config is the editor configuration.
type Config struct {
	// HistoryLimit bounds the undo history. Zero means the default.
	HistoryLimit int `yaml:"history_limit,omitempty"`
	// RegionBand is the edge band thickness of empty region containers.
	RegionBand float64 `yaml:"region_band,omitempty"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level,omitempty"`
	// Catalog is the path of a user catalogue replacing the built-in one.
	Catalog string `yaml:"catalog,omitempty"`
	// Ignore holds gitignore-style patterns skipped when discovering scenes.
	Ignore []string `yaml:"ignore,omitempty"`

	dir string
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.dir = filepath.Dir(path)

	return c, nil
}

// Parse parses and validates configuration YAML data.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults sets default values for optional fields.
func applyDefaults(c *Config) {
	if c.HistoryLimit == 0 {
		c.HistoryLimit = job.DefaultHistoryLimit
	}

	if c.RegionBand == 0 {
		c.RegionBand = droptarget.DefaultBand
	}

	if c.LogLevel == "" {
		c.LogLevel = logrus.InfoLevel.String()
	}
}

func (c *Config) validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit %d is negative", ErrInvalid, c.HistoryLimit)
	}

	if c.RegionBand < 0 {
		return fmt.Errorf("%w: region_band %v is negative", ErrInvalid, c.RegionBand)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// CatalogPath returns the user catalogue path resolved against the
// configuration file directory, or empty for the built-in catalogue.
func (c *Config) CatalogPath() string {
	if c.Catalog == "" || filepath.IsAbs(c.Catalog) || c.dir == "" {
		return c.Catalog
	}

	return filepath.Join(c.dir, c.Catalog)
}

// LoadCatalog returns the configured catalogue.
func (c *Config) LoadCatalog() (*catalog.Catalog, error) {
	path := c.CatalogPath()
	if path == "" {
		return catalog.Default(), nil
	}

	return catalog.LoadFile(path)
}
