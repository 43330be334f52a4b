package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gaia/internal/ui/browse"
)

// browseInput allows tests to override stdin for the interactive browser.
var browseInput io.Reader = os.Stdin

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		opts := addSessionFlags(flags)
		uiMode := flags.String("ui", "auto", "UI mode: auto|live|plain")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		s, err := openSession(opts, stderr)
		if err != nil {
			printFailure(stderr, "Browse failed", err)
			return ExitError
		}
		defer s.close()

		if !decision.useLive {
			fmt.Fprintln(stdout, browse.RenderList(s.set.All(), true))
			return ExitOK
		}
		in := browseInput
		if in == nil {
			in = os.Stdin
		}
		if err := browse.Run(s.set, browse.Options{NoColor: s.cfg.UI.NoColor}, in, stdout); err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
