package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gaia/internal/fixture"
	"gaia/internal/testutil"
)

// isolate runs the test in an empty directory with a fixed environment.
func isolate(t *testing.T, env map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	original := getenv
	getenv = func(key string) string { return env[key] }
	t.Cleanup(func() { getenv = original })
	return dir
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

const fixtureJSON = `[
  {
    "id": 7,
    "question": "Why is the sky blue?",
    "description": "Physics",
    "expectedResponse": {
      "answer": "Rayleigh scattering.",
      "reasoning": "Shorter wavelengths scatter more.",
      "sources": ["https://example.com/a", "https://example.com/a"]
    }
  }
]
`

func TestValidateBuiltInSet(t *testing.T) {
	isolate(t, nil)
	code, out, errOut := run(t, "validate")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Fixtures OK (6 cases)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidateFileWithLintWarning(t *testing.T) {
	dir := isolate(t, nil)
	path := testutil.WriteFile(t, dir, "cases.json", fixtureJSON)
	code, out, errOut := run(t, "validate", "--file", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "warning: cases[0].expectedResponse.sources[1]") {
		t.Fatalf("expected duplicate source warning, got %q", out)
	}
	if !strings.Contains(out, "Fixtures OK (1 cases)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	dir := isolate(t, nil)
	bad := strings.Replace(fixtureJSON, `"id": 7`, `"id": 0`, 1)
	bad = strings.Replace(bad, `"description": "Physics"`, `"description": ""`, 1)
	path := testutil.WriteFile(t, dir, "bad.json", bad)
	code, _, errOut := run(t, "validate", "--file", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{"Validation failed:", "cases[0].id", "cases[0].description"} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("expected %q in stderr, got %q", want, errOut)
		}
	}
}

func TestFixturesFileFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "cases.json", fixtureJSON)
	isolate(t, map[string]string{"GAIA_FIXTURES_FILE": path})
	code, out, _ := run(t, "validate")
	if code != ExitOK || !strings.Contains(out, "(1 cases)") {
		t.Fatalf("expected env fixtures to load, got %d %q", code, out)
	}
}

func TestInvalidEnvLogLevel(t *testing.T) {
	isolate(t, map[string]string{"GAIA_LOG_LEVEL": "loud"})
	code, _, errOut := run(t, "list")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut, "log.level") {
		t.Fatalf("expected log.level issue, got %q", errOut)
	}
}

func TestListTableAndJSON(t *testing.T) {
	isolate(t, nil)
	code, out, _ := run(t, "list")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 6 || !strings.HasPrefix(lines[0], "#01") {
		t.Fatalf("unexpected table output %q", out)
	}

	code, out, _ = run(t, "list", "--format", "json")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	var entries []listEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode list json: %v", err)
	}
	if len(entries) != 6 || entries[5].ID != 6 {
		t.Fatalf("unexpected entries %+v", entries)
	}

	if code, _, _ := run(t, "list", "--format", "csv"); code != ExitUsage {
		t.Fatalf("expected usage exit for bad format, got %d", code)
	}
}

func TestShowFormats(t *testing.T) {
	isolate(t, nil)
	code, out, _ := run(t, "show", "3")
	if code != ExitOK || !strings.Contains(out, "Case #03 | Environmental science") {
		t.Fatalf("unexpected text output %d %q", code, out)
	}

	code, out, _ = run(t, "show", "--format", "json", "3")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	var tc fixture.TestCase
	if err := json.Unmarshal([]byte(out), &tc); err != nil {
		t.Fatalf("decode show json: %v", err)
	}
	want, _ := fixture.GAIA().ByID(3)
	if diff := cmp.Diff(want, tc); diff != "" {
		t.Fatalf("show json mismatch (-want +got):\n%s", diff)
	}

	code, out, _ = run(t, "show", "--format", "yaml", "4")
	if code != ExitOK || !strings.Contains(out, "expectedResponse:") {
		t.Fatalf("unexpected yaml output %d %q", code, out)
	}
}

func TestShowUnknownID(t *testing.T) {
	isolate(t, nil)
	code, out, errOut := run(t, "show", "999")
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if !strings.Contains(errOut, "fixture 999 not found") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestShowRequiresID(t *testing.T) {
	isolate(t, nil)
	if code, _, _ := run(t, "show"); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if code, _, _ := run(t, "show", "three"); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}

func TestExportRoundTrip(t *testing.T) {
	dir := isolate(t, nil)
	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(dir, name)
		code, out, errOut := run(t, "export", "--out", path)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d (stderr %q)", name, ExitOK, code, errOut)
		}
		if !strings.Contains(out, "Wrote "+path+" (6 cases)") {
			t.Fatalf("%s: unexpected output %q", name, out)
		}
		loaded, err := fixture.LoadFile(path)
		if err != nil {
			t.Fatalf("%s: reload: %v", name, err)
		}
		if diff := cmp.Diff(fixture.GAIA().All(), loaded.All()); diff != "" {
			t.Fatalf("%s: round trip mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestExportStdoutYAML(t *testing.T) {
	isolate(t, nil)
	code, out, _ := run(t, "export", "--format", "yaml")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	set, err := fixture.Decode([]byte(out), fixture.FormatYAML)
	if err != nil {
		t.Fatalf("decode exported yaml: %v", err)
	}
	if set.Len() != 6 {
		t.Fatalf("expected 6 cases, got %d", set.Len())
	}
	if code, _, _ := run(t, "export", "--format", "xml"); code != ExitUsage {
		t.Fatalf("expected usage exit for bad format, got %d", code)
	}
}

func TestSchemaPrintsJSON(t *testing.T) {
	isolate(t, nil)
	code, out, _ := run(t, "schema")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !json.Valid([]byte(out)) {
		t.Fatalf("schema output is not valid json: %q", out)
	}
}

func TestStatsSummarizesBuiltInSet(t *testing.T) {
	isolate(t, nil)
	code, out, errOut := run(t, "stats")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	for _, want := range []string{"Cases: 6", "Citation hosts:", "nature.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
}

func TestBrowsePlainFallback(t *testing.T) {
	isolate(t, nil)
	code, out, errOut := run(t, "browse", "--ui", "live")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(errOut, "not a TTY") {
		t.Fatalf("expected tty warning, got %q", errOut)
	}
	if !strings.Contains(out, "#06") {
		t.Fatalf("expected plain listing, got %q", out)
	}
}

func TestCheckAnswer(t *testing.T) {
	dir := isolate(t, nil)
	good := testutil.WriteFile(t, dir, "good.json", `{"answer": "yes", "reasoning": null, "sources": ["https://example.com"]}`)
	code, out, errOut := run(t, "check-answer", "--in", good, "--id", "2")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut)
	}
	for _, want := range []string{
		"Answer OK",
		"Answer length: 3 characters",
		"Has reasoning: false",
		"Number of sources: 1",
		"Gold:   Quantum computing",
		"Gold sources: 4",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}

	bad := testutil.WriteFile(t, dir, "bad.json", `{"answer": "", "sources": "https://example.com"}`)
	code, _, errOut = run(t, "check-answer", "--in", bad)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{
		"Answer invalid:",
		"  Field 'answer' must be a non-empty string",
		"  Field 'sources' must be an array",
	} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("expected %q in stderr %q", want, errOut)
		}
	}

	if code, _, _ := run(t, "check-answer"); code != ExitUsage {
		t.Fatalf("expected usage exit without --in, got %d", code)
	}
}

func TestCheckAnswerFromStdin(t *testing.T) {
	isolate(t, nil)
	original := answerInput
	answerInput = strings.NewReader(`{"answer": "42", "reasoning": "count", "sources": ["a", "b"]}`)
	t.Cleanup(func() { answerInput = original })

	code, out, _ := run(t, "check-answer", "--in", "-")
	if code != ExitOK || !strings.Contains(out, "Answer OK") {
		t.Fatalf("unexpected result %d %q", code, out)
	}
	if !strings.Contains(out, "Has reasoning: true") || !strings.Contains(out, "Number of sources: 2") {
		t.Fatalf("unexpected stats %q", out)
	}
}

func TestCheckAnswerUnknownGoldID(t *testing.T) {
	dir := isolate(t, nil)
	good := testutil.WriteFile(t, dir, "good.json", `{"answer": "yes"}`)
	code, _, errOut := run(t, "check-answer", "--in", good, "--id", "999")
	if code != ExitError || !strings.Contains(errOut, "fixture 999 not found") {
		t.Fatalf("unexpected result %d %q", code, errOut)
	}
}
