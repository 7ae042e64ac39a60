package runner

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ChoiceNmap     = "1"
	ChoiceGobuster = "2"
	ChoiceBoth     = "3"
)

var ErrInvalidChoice = errors.New("invalid choice")

// readLine prints the prompt and returns the next input line, trimmed.
// A final line without a trailing newline still counts.
func (runner *Runner) readLine(prompt string) (string, error) {
	fmt.Fprint(runner.out, prompt)
	line, err := runner.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

// chooseTool resolves the workflow, from the -m flag when given,
// interactively otherwise.
func (runner *Runner) chooseTool() (string, error) {
	if mode := normalizeMode(runner.options.Mode); mode != "" {
		if mode == ChoiceNmap || mode == ChoiceGobuster || mode == ChoiceBoth {
			return mode, nil
		}
		fmt.Fprintln(runner.out, "Invalid choice. Exiting.")
		return "", ErrInvalidChoice
	}

	fmt.Fprintln(runner.out, "Choose the tool to use:")
	fmt.Fprintln(runner.out, "1. Nmap")
	fmt.Fprintln(runner.out, "2. Gobuster")
	fmt.Fprintln(runner.out, "3. Both Nmap and Gobuster")
	choice, err := runner.readLine("Enter your choice (1/2/3): ")
	if err != nil {
		return "", err
	}
	if choice == ChoiceNmap || choice == ChoiceGobuster || choice == ChoiceBoth {
		return choice, nil
	}
	fmt.Fprintln(runner.out, "Invalid choice. Exiting.")
	return "", ErrInvalidChoice
}

// normalizeMode also accepts the tool names used in the help text.
func normalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "":
		return ""
	case ChoiceNmap, "nmap":
		return ChoiceNmap
	case ChoiceGobuster, "gobuster":
		return ChoiceGobuster
	case ChoiceBoth, "both":
		return ChoiceBoth
	}
	return mode
}

func (runner *Runner) readTarget() (string, error) {
	if target := strings.TrimSpace(runner.options.Target); target != "" {
		return target, nil
	}
	return runner.readLine("Enter the target IP address or domain: ")
}
