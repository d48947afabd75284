// Package config reads the CLI configuration from FLOATFORM_* environment
// variables, optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "FLOATFORM_"

var (
	ErrParsingConfig = errors.New("config: parse environment")
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config holds the settings shared by the CLI commands. Flags override them.
type Config struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	Addr         string `env:"ADDR" envDefault:":8080"`
	TemplatesDir string `env:"TEMPLATES_DIR"`
	Definition   string `env:"DEFINITION"`
	Theme        string `env:"THEME"`
	ThemeVariant string `env:"THEME_VARIANT"`
}

// Load reads the given .env files (or ./.env when none are given, ignoring
// its absence) into the process environment and parses Config from it.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load env files: %w", err)
		}
	}
	return parse(env.Options{Prefix: Prefix})
}

// FromMap parses Config from environment, which holds unprefixed names
// ("LOG_LEVEL") or prefixed ones ("FLOATFORM_LOG_LEVEL").
func FromMap(environment map[string]string) (Config, error) {
	prefixed := make(map[string]string, len(environment))
	for key, value := range environment {
		if !strings.HasPrefix(key, Prefix) {
			key = Prefix + key
		}
		prefixed[key] = value
	}
	return parse(env.Options{Prefix: Prefix, Environment: prefixed})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: log format %q (want text, json or logfmt)", ErrInvalidConfig, c.LogFormat)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalidConfig)
	}
	return nil
}
