package utils

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// ReadPassphrase prompts on stderr and reads a passphrase from stdin without
// echo. Surrounding whitespace is removed, the same way PASSWORD is trimmed
// at build time.
func ReadPassphrase(prompt string) ([]byte, error) {
	return readPassphrase(os.Stdin, "stdin", prompt)
}

// ReadPassphraseFromTTY is ReadPassphrase on the controlling terminal, for
// when stdin carries the sealed page itself.
func ReadPassphraseFromTTY(prompt string) ([]byte, error) {
	path := ttyPath()
	tty, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for passphrase input: %w", path, err)
	}
	defer tty.Close()

	return readPassphrase(tty, path, prompt)
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func readPassphrase(f *os.File, name, prompt string) ([]byte, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: %s is not a terminal", name)
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return bytes.TrimSpace(passphrase), nil
}

func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}
