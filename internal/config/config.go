package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v2"
)

// DefaultCutoff is the issuance kill-switch used when TOKEN_CUTOFF is
// not configured.
const DefaultCutoff = "2026-11-12T00:00:00Z"

const defaultTable = "lost_and_found"

// Table names are interpolated into schema DDL, so only plain
// identifiers are accepted.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		URL   string `yaml:"url"`
		Table string `yaml:"table"`
	} `yaml:"database"`
	Auth struct {
		SigningKey     string `yaml:"signing_key"`
		ClientID       string `yaml:"client_id"`
		ClientSecret   string `yaml:"client_secret"`
		IssuanceCutoff string `yaml:"issuance_cutoff"`

		CutoffTime time.Time `yaml:"-"`
	} `yaml:"auth"`
}

// LoadConfig reads the yaml file named by CONFIG_PATH (default
// config/config.yaml, optional) and applies environment overrides.
// The result is immutable by convention: it is built once at startup
// and handed to constructors, never read from globals afterwards.
func LoadConfig() (Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	overrideFromEnv(&cfg.Database.URL, "DATABASE_URL")
	overrideFromEnv(&cfg.Database.Table, "TABLE_NAME")
	overrideFromEnv(&cfg.Auth.SigningKey, "SECRET_KEY")
	overrideFromEnv(&cfg.Auth.ClientID, "STATIC_CLIENT_ID")
	overrideFromEnv(&cfg.Auth.ClientSecret, "STATIC_CLIENT_SECRET")
	overrideFromEnv(&cfg.Auth.IssuanceCutoff, "TOKEN_CUTOFF")

	if cfg.Database.Table == "" {
		cfg.Database.Table = defaultTable
	}
	if !identPattern.MatchString(cfg.Database.Table) {
		return Config{}, fmt.Errorf("invalid table name %q", cfg.Database.Table)
	}

	if cfg.Auth.IssuanceCutoff == "" {
		cfg.Auth.IssuanceCutoff = DefaultCutoff
	}
	cutoff, err := time.Parse(time.RFC3339, cfg.Auth.IssuanceCutoff)
	if err != nil {
		return Config{}, fmt.Errorf("parsing token cutoff: %w", err)
	}
	cfg.Auth.CutoffTime = cutoff

	return cfg, nil
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
