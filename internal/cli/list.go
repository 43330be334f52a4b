package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"gaia/internal/ui/browse"
)

type listEntry struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Question    string `json:"question"`
}

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		opts := addSessionFlags(flags)
		format := flags.String("format", "table", "Output format: table|json")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		mode := strings.ToLower(strings.TrimSpace(*format))
		if mode != "table" && mode != "json" {
			fmt.Fprintf(stderr, "invalid format %q (expected table|json)\n", *format)
			return ExitUsage
		}

		s, err := openSession(opts, stderr)
		if err != nil {
			printFailure(stderr, "List failed", err)
			return ExitError
		}
		defer s.close()

		cases := s.set.All()
		if mode == "table" {
			fmt.Fprintln(stdout, browse.RenderList(cases, true))
			return ExitOK
		}
		entries := make([]listEntry, 0, len(cases))
		for _, tc := range cases {
			entries = append(entries, listEntry{ID: tc.ID, Description: tc.Description, Question: tc.Question})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "List failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, string(data))
		return ExitOK
	}
}
