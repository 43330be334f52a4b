package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `version: 1
fixtures_file: %q
log:
  level: warn
  format: console
ui:
  no_color: false
`

// Scaffold writes a config file and a fixtures file named fixturesName next
// to it. Existing files are never overwritten.
func Scaffold(configPath, fixturesName string, fixtures []byte) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if fixturesName == "" {
		fixturesName = DefaultFixturesFile
	}
	fixturesPath := filepath.Join(filepath.Dir(configPath), fixturesName)
	for _, path := range []string{configPath, fixturesPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", path)
			}
			return fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	relFixtures, err := filepath.Rel(RootFromConfigPath(configPath), fixturesPath)
	if err != nil {
		return fmt.Errorf("resolve fixtures path: %w", err)
	}
	contents := fmt.Sprintf(configTemplate, filepath.ToSlash(relFixtures))
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(fixturesPath, fixtures, 0o644); err != nil {
		return fmt.Errorf("write fixtures file: %w", err)
	}
	return nil
}
