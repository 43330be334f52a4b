package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		opts := addSessionFlags(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		s, err := openSession(opts, stderr)
		if err != nil {
			printFailure(stderr, "Validation failed", err)
			return ExitError
		}
		defer s.close()

		for _, issue := range s.set.Lint() {
			fmt.Fprintf(stdout, "warning: %s\n", issue)
		}
		fmt.Fprintf(stdout, "Fixtures OK (%d cases)\n", s.set.Len())
		return ExitOK
	}
}
