package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gaia/internal/ui/browse"
)

const showWidth = 100

// runShow builds the handler for the show command.
func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		opts := addSessionFlags(flags)
		format := flags.String("format", "text", "Output format: text|json|yaml")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "show requires exactly one case id")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		id, err := strconv.Atoi(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "invalid case id %q\n", flags.Arg(0))
			return ExitUsage
		}
		mode := strings.ToLower(strings.TrimSpace(*format))
		switch mode {
		case "text", "json", "yaml":
		default:
			fmt.Fprintf(stderr, "invalid format %q (expected text|json|yaml)\n", *format)
			return ExitUsage
		}

		s, err := openSession(opts, stderr)
		if err != nil {
			printFailure(stderr, "Show failed", err)
			return ExitError
		}
		defer s.close()

		tc, err := s.set.ByID(id)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}

		switch mode {
		case "json":
			data, err := json.MarshalIndent(tc, "", "  ")
			if err != nil {
				fmt.Fprintf(stderr, "Show failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintln(stdout, string(data))
		case "yaml":
			data, err := yaml.Marshal(tc)
			if err != nil {
				fmt.Fprintf(stderr, "Show failed: %v\n", err)
				return ExitError
			}
			fmt.Fprint(stdout, string(data))
		default:
			noColor := s.cfg.UI.NoColor || !isTerminal(stdout)
			fmt.Fprintln(stdout, browse.RenderCase(tc, showWidth, noColor))
		}
		return ExitOK
	}
}
