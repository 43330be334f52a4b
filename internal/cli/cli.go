package cli

import (
	"flag"
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  gaia <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"gaia <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags parses command flags. ok is false when the command should return
// code immediately.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands []*Command

func init() {
	commands = []*Command{
		command("init", "Scaffold .gaia/config.yml and a fixtures file", []string{
			"gaia init [--config <path>]",
		}, runInit),
		command("list", "List fixture cases", []string{
			"gaia list [--file <path>] [--format table|json]",
		}, runList),
		command("show", "Show one fixture case", []string{
			"gaia show [--file <path>] [--format text|json|yaml] <id>",
		}, runShow),
		command("validate", "Validate a fixtures file", []string{
			"gaia validate [--file <path>]",
		}, runValidate),
		command("export", "Write fixtures in the interchange format", []string{
			"gaia export [--file <path>] [--format json|yaml] [--out <path>]",
		}, runExport),
		command("schema", "Print the JSON Schema for fixture files", []string{
			"gaia schema",
		}, runSchema),
		command("stats", "Summarize fixtures by category and citation host", []string{
			"gaia stats [--file <path>]",
		}, runStats),
		command("browse", "Browse fixtures in the terminal", []string{
			"gaia browse [--file <path>] [--ui auto|live|plain]",
		}, runBrowse),
		command("check-answer", "Check the shape of a JSON answer payload", []string{
			"gaia check-answer --in <path|-> [--id <id>]",
		}, runCheckAnswer),
	}
}
