package utils

import (
	"fmt"
	"io"
	"os"
)

// ReadStdin reads all content from stdin, up to maxBytes.
// Returns an error if stdin is a terminal (no piped data), empty, or larger
// than maxBytes.
func ReadStdin(maxBytes int64) ([]byte, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat stdin: %w", err)
	}

	// ModeCharDevice means stdin is connected to a terminal.
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no data provided on stdin (hint: pipe the sealed page to this command)")
	}

	return ReadLimited(os.Stdin, maxBytes)
}

// ReadLimited reads r to EOF and fails if it holds more than maxBytes or
// nothing at all.
func ReadLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("input is larger than %d bytes", maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("input is empty")
	}

	return data, nil
}
