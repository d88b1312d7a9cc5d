// Package textfile reads and writes UTF-8 text for the file based cipher
// commands. The path "-" (or "") selects the provided standard stream.
package textfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

const Stdio = "-"

// ErrNotUTF8 is returned when input is not valid UTF-8.
var ErrNotUTF8 = errors.New("input is not valid UTF-8")

// Read returns the contents of path, or everything from stdin for "-".
func Read(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == Stdio {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", displayName(path), err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", displayName(path), ErrNotUTF8)
	}
	return string(data), nil
}

// Write stores content at path, truncating any existing file. For "-" the
// content goes to stdout followed by a newline.
func Write(path, content string, stdout io.Writer) error {
	if path == "" || path == Stdio {
		if _, err := fmt.Fprintln(stdout, content); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func displayName(path string) string {
	if path == "" || path == Stdio {
		return "stdin"
	}
	return path
}
