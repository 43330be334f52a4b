package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"gaia/internal/fixture"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		opts := addSessionFlags(flags)
		formatValue := flags.String("format", "", "Output format: json|yaml (default: from --out extension, else json)")
		outPath := flags.String("out", "", "Write to this file instead of stdout")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		out := strings.TrimSpace(*outPath)
		format := fixture.FormatJSON
		if out != "" {
			format = fixture.FormatFromPath(out)
		}
		if strings.TrimSpace(*formatValue) != "" {
			parsed, err := fixture.ParseFormat(*formatValue)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return ExitUsage
			}
			format = parsed
		}

		s, err := openSession(opts, stderr)
		if err != nil {
			printFailure(stderr, "Export failed", err)
			return ExitError
		}
		defer s.close()

		var buf bytes.Buffer
		if err := fixture.Encode(&buf, s.set, format); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		if out == "" {
			_, _ = stdout.Write(buf.Bytes())
			return ExitOK
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintf(stderr, "Export failed: %v\n", err)
			return ExitError
		}
		s.logger.Info("fixtures exported", zap.String("path", out), zap.String("format", string(format)))
		fmt.Fprintf(stdout, "Wrote %s (%d cases)\n", out, s.set.Len())
		return ExitOK
	}
}
