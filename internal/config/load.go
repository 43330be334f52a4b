package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a config file. A relative fixtures_file
// is resolved against the project root.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	if cfg.FixturesFile != "" && !filepath.IsAbs(cfg.FixturesFile) {
		cfg.FixturesFile = filepath.Join(RootFromConfigPath(path), cfg.FixturesFile)
	}
	return cfg, nil
}

// Parse decodes a single strict YAML document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Normalize trims and lowercases enumerated values.
func Normalize(cfg *Config) {
	cfg.FixturesFile = strings.TrimSpace(cfg.FixturesFile)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
}

// ApplyEnv overrides config values from GAIA_* environment variables. NO_COLOR
// is honored as well.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("GAIA_FIXTURES_FILE")); v != "" {
		cfg.FixturesFile = v
	}
	if v := getenv("GAIA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("GAIA_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
	if v := getenv("GAIA_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GAIA_NO_COLOR: %w", err)
		}
		cfg.UI.NoColor = noColor
	}
	Normalize(cfg)
	return Validate(*cfg)
}
