package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gaia/internal/testutil"
)

func withInitInput(t *testing.T, input string) {
	t.Helper()
	original := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = original })
}

func TestInitScaffoldsConfigAndFixtures(t *testing.T) {
	isolate(t, nil)
	withInitInput(t, "y\nyaml\n")

	code, out, errOut := run(t, "init")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	configPath := filepath.Join(wd, ".gaia", "config.yml")
	fixturesPath := filepath.Join(wd, ".gaia", "fixtures.yaml")
	for _, path := range []string{configPath, fixturesPath} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
		if !strings.Contains(out, "Wrote "+path) {
			t.Fatalf("expected %q in output %q", path, out)
		}
	}

	code, out, errOut = run(t, "validate")
	if code != ExitOK {
		t.Fatalf("expected scaffolded config to validate, got %d (stderr %q)", code, errOut)
	}
	if !strings.Contains(out, "Fixtures OK (6 cases)") {
		t.Fatalf("unexpected validate output %q", out)
	}
}

func TestInitExplicitConfigPathDefaultsToJSON(t *testing.T) {
	dir := isolate(t, nil)
	withInitInput(t, "\n\n")
	configPath := filepath.Join(dir, "conf", "gaia.yml")

	code, _, errOut := run(t, "init", "--config", configPath)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, "conf", "fixtures.json")); err != nil {
		t.Fatalf("expected json fixtures: %v", err)
	}

	code, out, errOut := run(t, "list", "--config", configPath)
	if code != ExitOK || !strings.Contains(out, "#06") {
		t.Fatalf("expected list through config, got %d %q %q", code, out, errOut)
	}
}

func TestInitCancelled(t *testing.T) {
	dir := isolate(t, nil)
	withInitInput(t, "n\n")

	code, _, errOut := run(t, "init")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "Init cancelled.") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, ".gaia")); !os.IsNotExist(err) {
		t.Fatalf("expected no config dir, got %v", err)
	}
}

func TestInitRefusesExistingConfig(t *testing.T) {
	dir := isolate(t, nil)
	withInitInput(t, "y\njson\n")
	testutil.WriteFile(t, dir, ".gaia/config.yml", "version: 1\n")

	code, _, errOut := run(t, "init")
	if code != ExitError || !strings.Contains(errOut, "already exists") {
		t.Fatalf("unexpected result %d %q", code, errOut)
	}
}
