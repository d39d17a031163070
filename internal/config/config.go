package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file finbook looks for in the working directory.
const DefaultPath = "finbook.yaml"

// Config represents the top-level finbook.yaml configuration.
type Config struct {
	Data  DataConfig  `yaml:"data"`
	Chart ChartConfig `yaml:"chart"`
}

// DataConfig locates the durable data files.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// ChartConfig controls chart output.
type ChartConfig struct {
	Output string `yaml:"output"` // relative paths resolve under the data dir
}

// Load reads a finbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = Default().Data.Dir
	}
	if cfg.Chart.Output == "" {
		cfg.Chart.Output = Default().Chart.Output
	}
	return &cfg, nil
}

// LoadOrDefault reads the config if it exists, falling back to defaults when
// the file is absent.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data:  DataConfig{Dir: "data"},
		Chart: ChartConfig{Output: "category_spending_pie.png"},
	}
}

// ChartPath resolves the chart output location. Relative paths land under the
// data dir, next to the files they are derived from.
func (c *Config) ChartPath() string {
	if filepath.IsAbs(c.Chart.Output) {
		return c.Chart.Output
	}
	return filepath.Join(c.Data.Dir, c.Chart.Output)
}
