package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global holds the persisted rendering defaults. Every value can be
// overridden per invocation by a CLI flag; nothing here is required for the
// tool to run.
type Global struct {
	Palette        string  `mapstructure:"palette" yaml:"palette"`
	Sort           string  `mapstructure:"sort" yaml:"sort"`
	ErrorBars      bool    `mapstructure:"error_bars" yaml:"error_bars"`
	SamplesPerDept int     `mapstructure:"samples_per_dept" yaml:"samples_per_dept"`
	Seed           int64   `mapstructure:"seed" yaml:"seed"`
	PNGScale       float64 `mapstructure:"png_scale" yaml:"png_scale"`
	Title          string  `mapstructure:"title" yaml:"title"`
	OutputDir      string  `mapstructure:"output_dir" yaml:"output_dir"`
}

// Save writes the configuration to cfgFile, or to ~/.payscope/config.yaml
// when cfgFile is empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".payscope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("PAYSCOPE")
	v.AutomaticEnv()

	v.SetDefault("palette", "Plotly")
	v.SetDefault("sort", "avg-desc")
	v.SetDefault("error_bars", true)
	v.SetDefault("samples_per_dept", 300)
	v.SetDefault("seed", 42)
	v.SetDefault("png_scale", 2.0)
	v.SetDefault("title", "Average Salary by Department")
	v.SetDefault("output_dir", ".")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".payscope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
