package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is assembled from defaults, an optional config.yaml and
// environment variables, in that order of precedence (env wins).
type Config struct {
	Port      string `yaml:"port"`
	DataDir   string `yaml:"data_dir"`
	SeedDir   string `yaml:"seed_dir"`
	JWTSecret string `yaml:"jwt_secret"`
	// Ephemeral selects the no-persistence storage strategy: every start
	// seeds fresh and nothing is written to disk.
	Ephemeral bool `yaml:"ephemeral"`
	// WriteDelay emulates backend latency on additive mutations.
	WriteDelay time.Duration `yaml:"write_delay"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      "8080",
		DataDir:   "data",
		JWTSecret: "glassity-dev-secret",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// No config file is fine; defaults plus env apply.
		default:
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SEED_DIR"); v != "" {
		cfg.SeedDir = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("EPHEMERAL"); v == "1" || v == "true" {
		cfg.Ephemeral = true
	}
	if v := os.Getenv("WRITE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WRITE_DELAY %q: %w", v, err)
		}
		cfg.WriteDelay = d
	}
	return cfg, nil
}
