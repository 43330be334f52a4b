package config

// Config is the gaia tool configuration loaded from .gaia/config.yml.
type Config struct {
	Version      int       `yaml:"version"`
	FixturesFile string    `yaml:"fixtures_file"`
	Log          LogConfig `yaml:"log"`
	UI           UIConfig  `yaml:"ui"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Version: 1,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
