package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRootHelpListsGaiaCommands verifies the registry order and summaries in root help.
func TestRootHelpListsGaiaCommands(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"help"}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", errOut.String())
	}
	output := out.String()
	if !strings.Contains(output, "gaia <command> [options]") {
		t.Fatalf("expected gaia usage line, got %q", output)
	}
	want := []string{"init", "list", "show", "validate", "export", "schema", "stats", "browse", "check-answer"}
	got := make([]string, 0, len(commands))
	for _, cmd := range commands {
		got = append(got, cmd.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command registry mismatch (-want +got):\n%s", diff)
	}
	last := -1
	for _, name := range want {
		idx := strings.Index(output, "  "+name+" ")
		if idx <= last {
			t.Fatalf("expected %q listed after previous command in %q", name, output)
		}
		last = idx
	}
	if !strings.Contains(output, "Check the shape of a JSON answer payload") {
		t.Fatalf("expected check-answer summary in %q", output)
	}
}

// TestNoArgsPrintsUsageWithUsageExit verifies a bare invocation is a usage error on stdout.
func TestNoArgsPrintsUsageWithUsageExit(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run(nil, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if errOut.Len() != 0 || !strings.Contains(out.String(), "Commands:") {
		t.Fatalf("unexpected output stdout=%q stderr=%q", out.String(), errOut.String())
	}
}

// TestUnknownCommandNamesIt verifies unknown commands are reported on stderr.
func TestUnknownCommandNamesIt(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"grade"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Unknown command: grade") || !strings.Contains(errOut.String(), "check-answer") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestCommandHelp(t *testing.T) {
	for _, cmd := range commands {
		var out, err bytes.Buffer
		code := Run([]string{cmd.Name, "--help"}, &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", cmd.Name, ExitOK, code)
		}
		if err.Len() != 0 {
			t.Fatalf("%s: expected no stderr output, got %q", cmd.Name, err.String())
		}
		if !strings.Contains(out.String(), "Usage:") {
			t.Fatalf("%s: expected usage output, got %q", cmd.Name, out.String())
		}
		for _, line := range cmd.Usage {
			if !strings.Contains(out.String(), line) {
				t.Fatalf("%s: expected usage line %q", cmd.Name, line)
			}
		}
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	for _, name := range []string{"list", "validate", "export", "stats"} {
		var out, err bytes.Buffer
		code := Run([]string{name, "--bogus"}, &out, &err)
		if code != ExitUsage {
			t.Fatalf("%s: expected exit %d, got %d", name, ExitUsage, code)
		}
		if !strings.Contains(err.String(), "invalid arguments") {
			t.Fatalf("%s: expected invalid arguments message, got %q", name, err.String())
		}
	}
}

func TestUnexpectedPositionalArgs(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"schema", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "unexpected arguments: extra") {
		t.Fatalf("unexpected stderr %q", err.String())
	}
}
