package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"gaia/internal/catalog"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			printFailure(stderr, "Stats failed", err)
			return ExitError
		}
		defer s.close()

		ctx := context.Background()
		cat, err := catalog.Open(ctx, s.set, s.logger)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		defer cat.Close()

		summary, err := cat.Summary(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed: %v\n", err)
			return ExitError
		}
		printSummary(stdout, summary)
		return ExitOK
	}
}

func printSummary(w io.Writer, summary catalog.Summary) {
	fmt.Fprintf(w, "Cases: %d\n", summary.Cases)
	fmt.Fprintf(w, "Sources: %d\n", summary.Sources)
	fmt.Fprintf(w, "Answer length: min %d, max %d, mean %.1f\n",
		summary.AnswerChars.Min, summary.AnswerChars.Max, summary.AnswerChars.Mean)
	printCounts(w, "Descriptions", summary.Descriptions)
	printCounts(w, "Citation hosts", summary.Hosts)
}

func printCounts(w io.Writer, title string, counts []catalog.Count) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, c := range counts {
		fmt.Fprintf(w, "  %4d  %s\n", c.Count, c.Label)
	}
}
