package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Session struct {
		CompletionDelay time.Duration `yaml:"completion_delay"`
	} `yaml:"session"`
	Simulation struct {
		Benchmark bool   `yaml:"benchmark"`
		Seed      uint64 `yaml:"seed"`
	} `yaml:"simulation"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Report struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"report"`
}

// PathFromEnv returns CONFIG_PATH or the default location.
func PathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	// Values that may legitimately be zero or false in the file are preset here.
	cfg := &Config{}
	cfg.Session.CompletionDelay = 1500 * time.Millisecond
	cfg.Simulation.Benchmark = true
	cfg.Log.Pretty = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = "reports"
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("QUINT_COMPLETION_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("QUINT_COMPLETION_DELAY: %w", err)
		}
		cfg.Session.CompletionDelay = d
	}
	if v := os.Getenv("QUINT_BENCHMARK"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("QUINT_BENCHMARK: %w", err)
		}
		cfg.Simulation.Benchmark = b
	}
	if v := os.Getenv("QUINT_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("QUINT_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}
	if v := os.Getenv("QUINT_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_PRETTY: %w", err)
		}
		cfg.Log.Pretty = b
	}
	if v := os.Getenv("QUINT_REPORT_DIR"); v != "" {
		cfg.Report.OutputDir = v
	}
	return nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Session.CompletionDelay < 0 {
		return fmt.Errorf("session.completion_delay must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir is required")
	}
	return nil
}
