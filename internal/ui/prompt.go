package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadPassphrase prompts the user for a passphrase without echoing
// input. When stdin is not a terminal (scripts, CI) it falls back to
// the NOTEVAULT_PASSPHRASE environment variable.
func ReadPassphrase(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		if passphrase, ok := os.LookupEnv("NOTEVAULT_PASSPHRASE"); ok {
			return passphrase, nil
		}
		return "", fmt.Errorf("cannot read passphrase: stdin is not a terminal and NOTEVAULT_PASSPHRASE is unset")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}

	return string(passphrase), nil
}

// ReadLine prompts for a single line of input on stdin.
func ReadLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
