package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"gaia/internal/config"
	"gaia/internal/fixture"
	"gaia/internal/logging"
)

// getenv allows tests to isolate commands from the process environment.
var getenv = os.Getenv

// session bundles what a command needs after flag parsing.
type session struct {
	cfg    config.Config
	logger *zap.Logger
	set    *fixture.Set
	source string
}

type sessionFlags struct {
	configPath *string
	file       *string
}

func addSessionFlags(flags *flag.FlagSet) sessionFlags {
	return sessionFlags{
		configPath: flags.String("config", "", "Path to config file (default: search for .gaia/config.yml)"),
		file:       flags.String("file", "", "Fixtures file (default: config fixtures_file, else the built-in GAIA set)"),
	}
}

// openSession loads config, builds the logger and resolves the fixture set.
func openSession(opts sessionFlags, stderr io.Writer) (*session, error) {
	cfg, err := loadConfig(*opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(&cfg, getenv); err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}, stderr)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}
	path := strings.TrimSpace(*opts.file)
	if path == "" {
		path = cfg.FixturesFile
	}
	if path == "" {
		s.set = fixture.GAIA()
		s.source = "built-in"
	} else {
		set, err := fixture.LoadFile(path)
		if err != nil {
			logger.Debug("fixtures rejected", zap.String("source", path), zap.Error(err))
			return nil, err
		}
		s.set = set
		s.source = path
	}
	logger.Info("fixtures loaded", zap.String("source", s.source), zap.Int("cases", s.set.Len()))
	return s, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// loadConfig loads an explicit config path or searches from the working
// directory. A missing config falls back to defaults.
func loadConfig(path string) (config.Config, error) {
	if strings.TrimSpace(path) != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		return config.Load(abs)
	}
	found, err := config.FindConfigPath("")
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(found)
}

// printFailure writes err with one line per validation issue.
func printFailure(stderr io.Writer, heading string, err error) {
	fmt.Fprintf(stderr, "%s:\n", heading)
	var fixtureErr *fixture.ValidationError
	var configErr *config.ValidationError
	switch {
	case errors.As(err, &fixtureErr):
		for _, issue := range fixtureErr.Issues {
			fmt.Fprintf(stderr, "  %s\n", issue)
		}
	case errors.As(err, &configErr):
		for _, issue := range configErr.Issues {
			fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
		}
	default:
		fmt.Fprintf(stderr, "  %v\n", err)
	}
}
