package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/darkawower/pigment/internal/kmeans"
)

type OutputFormat string

const (
	FormatSwatch OutputFormat = "swatch"
	FormatHex    OutputFormat = "hex"
	FormatRGB    OutputFormat = "rgb"
)

type SortMode string

const (
	SortNone      SortMode = "none"
	SortLuminance SortMode = "luminance"
	SortShare     SortMode = "share"
)

type ClusteringConfig struct {
	MaxIterations int     `toml:"max-iterations"`
	Convergence   float64 `toml:"convergence"`
	Seed          int64   `toml:"seed"`
}

type OutputConfig struct {
	Format         OutputFormat `toml:"format"`
	Sort           SortMode     `toml:"sort"`
	DedupThreshold float64      `toml:"dedup-threshold"`
}

type Config struct {
	Clustering ClusteringConfig `toml:"clustering"`
	Output     OutputConfig     `toml:"output"`

	configPath string
}

func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pigment")
}

func DefaultConfig() *Config {
	return &Config{
		Clustering: ClusteringConfig{
			MaxIterations: kmeans.DefaultMaxIterations,
			Convergence:   kmeans.DefaultConvergence,
			Seed:          kmeans.DefaultSeed,
		},
		Output: OutputConfig{
			Format: FormatSwatch,
			Sort:   SortNone,
		},
	}
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	cfg := DefaultConfig()
	cfg.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Clustering.MaxIterations < 1 {
		return fmt.Errorf("max-iterations must be positive, got %d", c.Clustering.MaxIterations)
	}
	if c.Clustering.Convergence <= 0 {
		return fmt.Errorf("convergence must be positive, got %g", c.Clustering.Convergence)
	}

	switch c.Output.Format {
	case FormatSwatch, FormatHex, FormatRGB:
	default:
		return fmt.Errorf("invalid output format: %s (must be swatch, hex, or rgb)", c.Output.Format)
	}

	switch c.Output.Sort {
	case SortNone, SortLuminance, SortShare:
	default:
		return fmt.Errorf("invalid sort mode: %s (must be none, luminance, or share)", c.Output.Sort)
	}

	if c.Output.DedupThreshold < 0 {
		return fmt.Errorf("dedup-threshold must not be negative, got %g", c.Output.DedupThreshold)
	}

	return nil
}

func (c *Config) ConfigPath() string {
	return c.configPath
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = c.configPath
	}
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
