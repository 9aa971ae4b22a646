package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for one analytics run
type Config struct {
	Source   SourceConfig `yaml:"source"`
	Filter   FilterConfig `yaml:"filter"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
	Verbose  bool         `yaml:"verbose"`
}

// SourceConfig selects where the order ledger is read from. A DSN wins over a CSV path.
type SourceConfig struct {
	CSVPath string `yaml:"csv_path"`
	DSN     string `yaml:"dsn"`
	Table   string `yaml:"table"`
}

// FilterConfig holds the inclusive purchase-date window, as YYYY-MM-DD.
// Empty bounds default to the first and last purchase date in the ledger.
type FilterConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// OutputConfig controls where the JSON report is written
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Source.Table == "" {
		cfg.Source.Table = "orders"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// Load reads and parses the configuration file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// A .env file in the working directory is loaded first when present.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ORDER_ANALYTICS_CSV"); v != "" {
		cfg.Source.CSVPath = v
	}
	if v := os.Getenv("ORDER_ANALYTICS_DSN"); v != "" {
		cfg.Source.DSN = v
	}
	if v := os.Getenv("ORDER_ANALYTICS_TABLE"); v != "" {
		cfg.Source.Table = v
	}
	if v := os.Getenv("ORDER_ANALYTICS_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ORDER_ANALYTICS_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}

	return cfg, nil
}
