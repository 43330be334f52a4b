package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// readLine reads one line, trimming line endings. io.EOF is returned with
// whatever was read before it.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), err
}

// promptChoice asks for one of choices. An empty answer selects the default.
func promptChoice(reader *bufio.Reader, out io.Writer, label string, choices []string, defaultValue string) (string, error) {
	for {
		fmt.Fprintf(out, "%s (%s) [%s]: ", label, strings.Join(choices, "/"), defaultValue)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			return defaultValue, nil
		}
		for _, choice := range choices {
			if line == choice {
				return choice, nil
			}
		}
		if err == io.EOF {
			return "", fmt.Errorf("invalid %s %q", strings.ToLower(label), line)
		}
		fmt.Fprintf(out, "Please answer one of: %s.\n", strings.Join(choices, ", "))
	}
}

// promptYesNo prompts for a yes/no response with a default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, fmt.Errorf("invalid response %q", line)
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}
