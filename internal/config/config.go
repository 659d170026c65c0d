package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	apperrors "github.com/solarbyte-dev/fuzzyfont/internal/errors"
	"github.com/solarbyte-dev/fuzzyfont/pkg/types"
)

// Config represents the application configuration structure. It defines
// discovery sources, catalog presentation settings, user classification
// overrides, and theme colors.
type Config struct {
	Catalog struct {
		PageSize int `yaml:"page_size"` // Entries per page in listings and the browser
	} `yaml:"catalog"`
	Discovery struct {
		Directories []string `yaml:"directories"` // Font directories to scan
		Exclude     []string `yaml:"exclude"`     // Glob patterns for paths to skip
		Fontconfig  *bool    `yaml:"fontconfig"`  // Use fc-list when available (default true)
	} `yaml:"discovery"`
	// Overrides adds user entries to the classifier's override tier:
	// font name -> category names.
	Overrides map[string][]string `yaml:"overrides"`
	Watch     struct {
		Debounce int `yaml:"debounce"` // Seconds to coalesce change events before rebuilding
	} `yaml:"watch"`
	Theme struct {
		Primary string `yaml:"primary"` // Primary color for headers and branding
		Accent  string `yaml:"accent"`  // Accent color for category labels
		Error   string `yaml:"error"`   // Error message color
		Muted   string `yaml:"muted"`   // Muted color for paths and hints
	} `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Catalog.PageSize = 16
	cfg.Watch.Debounce = 2
	cfg.Theme.Primary = "#4F4FB7"
	cfg.Theme.Accent = "#E5C07B"
	cfg.Theme.Error = "#FF5555"
	cfg.Theme.Muted = "#959595"
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/fuzzyfont/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "fuzzyfont", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path. If the
// file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Catalog.PageSize > 0 {
		cfg.Catalog.PageSize = tempCfg.Catalog.PageSize
	}
	if len(tempCfg.Discovery.Directories) > 0 {
		cfg.Discovery.Directories = tempCfg.Discovery.Directories
	}
	if len(tempCfg.Discovery.Exclude) > 0 {
		cfg.Discovery.Exclude = tempCfg.Discovery.Exclude
	}
	if tempCfg.Discovery.Fontconfig != nil {
		cfg.Discovery.Fontconfig = tempCfg.Discovery.Fontconfig
	}
	if len(tempCfg.Overrides) > 0 {
		cfg.Overrides = tempCfg.Overrides
	}
	if tempCfg.Watch.Debounce > 0 {
		cfg.Watch.Debounce = tempCfg.Watch.Debounce
	}
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Accent != "" {
		cfg.Theme.Accent = tempCfg.Theme.Accent
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}
	if tempCfg.Theme.Muted != "" {
		cfg.Theme.Muted = tempCfg.Theme.Muted
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values that can be wrong rather than merely
// absent: the page size, exclude globs, and override category names.
func (c *Config) Validate() error {
	if c.Catalog.PageSize < 1 {
		return apperrors.NewConfigError("page size must be at least 1", "catalog.page_size", apperrors.InvalidConfig, nil)
	}
	for _, pattern := range c.Discovery.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return apperrors.NewConfigError("invalid exclude pattern", pattern, apperrors.InvalidConfig, err)
		}
	}
	for name, cats := range c.Overrides {
		if len(cats) == 0 {
			return apperrors.NewConfigError("override has no categories", name, apperrors.InvalidConfig, nil)
		}
		for _, cat := range cats {
			if _, ok := types.ParseCategory(cat); !ok {
				return apperrors.NewConfigError("unknown category in override", fmt.Sprintf("%s: %s", name, cat), apperrors.InvalidConfig, nil)
			}
		}
	}
	return nil
}

// UseFontconfig reports whether discovery should consult fc-list.
func (c *Config) UseFontconfig() bool {
	if c.Discovery.Fontconfig == nil {
		return true
	}
	return *c.Discovery.Fontconfig
}

// OverrideSets converts the raw override mapping into classifier category
// sets. Validate has already rejected unknown category names; this only
// fails on a config that skipped validation.
func (c *Config) OverrideSets() (map[string]types.CategorySet, error) {
	if len(c.Overrides) == 0 {
		return nil, nil
	}
	out := make(map[string]types.CategorySet, len(c.Overrides))
	for name, names := range c.Overrides {
		set := types.CategorySet{}
		for _, raw := range names {
			cat, ok := types.ParseCategory(raw)
			if !ok {
				return nil, apperrors.NewConfigError("unknown category in override", raw, apperrors.InvalidConfig, nil)
			}
			set.Add(cat)
		}
		out[name] = set
	}
	return out, nil
}

// CompiledExcludes compiles the exclude patterns for the discovery layer.
func (c *Config) CompiledExcludes() ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(c.Discovery.Exclude))
	for _, pattern := range c.Discovery.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid exclude pattern", pattern, apperrors.InvalidConfig, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
