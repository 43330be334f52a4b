package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gaia/internal/answer"
)

// answerInput allows tests to override stdin for "--in -".
var answerInput io.Reader = os.Stdin

// runCheckAnswer builds the handler for the check-answer command.
func runCheckAnswer(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		opts := addSessionFlags(flags)
		inPath := flags.String("in", "", "Answer payload path, or - for stdin")
		id := flags.Int("id", 0, "Print the gold answer of this case next to the payload")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if strings.TrimSpace(*inPath) == "" {
			fmt.Fprintln(stderr, "--in is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		data, err := readPayload(*inPath)
		if err != nil {
			fmt.Fprintf(stderr, "Check failed: %v\n", err)
			return ExitError
		}
		parsed, err := answer.Parse(data)
		if err != nil {
			var shapeErr *answer.ShapeError
			if errors.As(err, &shapeErr) {
				fmt.Fprintln(stderr, "Answer invalid:")
				for _, issue := range shapeErr.Issues {
					fmt.Fprintf(stderr, "  %s\n", issue)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Check failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, "Answer OK")
		printAnswerStats(stdout, parsed)

		if *id == 0 {
			return ExitOK
		}
		s, err := openSession(opts, stderr)
		if err != nil {
			printFailure(stderr, "Check failed", err)
			return ExitError
		}
		defer s.close()
		tc, err := s.set.ByID(*id)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitError
		}
		gold := tc.ExpectedResponse.AsAnswer()
		fmt.Fprintf(stdout, "\nAnswer: %s\n", parsed.Answer)
		fmt.Fprintf(stdout, "Gold:   %s\n", gold.Answer)
		fmt.Fprintf(stdout, "Gold sources: %d\n", len(gold.Sources))
		return ExitOK
	}
}

// printAnswerStats reports the basic quality signals for a payload.
func printAnswerStats(w io.Writer, a answer.Answer) {
	fmt.Fprintf(w, "Answer length: %d characters\n", utf8.RuneCountInString(a.Answer))
	fmt.Fprintf(w, "Has reasoning: %t\n", a.HasReasoning())
	fmt.Fprintf(w, "Number of sources: %d\n", len(a.Sources))
}

func readPayload(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "-" {
		in := answerInput
		if in == nil {
			in = os.Stdin
		}
		return io.ReadAll(in)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer: %w", err)
	}
	return data, nil
}
