package cli

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gaia/internal/config"
	"gaia/internal/fixture"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: ./.gaia/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		target := strings.TrimSpace(*configPath)
		if target == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			target = config.ConfigPath(wd)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		configDir := filepath.Dir(target)
		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", target)
			return ExitError
		}

		in := initInput
		if in == nil {
			in = os.Stdin
		}
		reader := bufio.NewReader(in)

		confirm, err := promptYesNo(reader, stdout, fmt.Sprintf("Initialize GAIA fixtures in %s?", configDir), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !confirm {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}

		choice, err := promptChoice(reader, stdout, "Fixtures format", []string{"json", "yaml"}, "json")
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		format, err := fixture.ParseFormat(choice)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		var encoded bytes.Buffer
		if err := fixture.Encode(&encoded, fixture.GAIA(), format); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fixturesName := "fixtures." + string(format)
		if err := config.Scaffold(target, fixturesName, encoded.Bytes()); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", target)
		fmt.Fprintf(stdout, "Wrote %s\n", filepath.Join(configDir, fixturesName))
		return ExitOK
	}
}
