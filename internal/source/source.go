package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// PipedQuery returns the content piped into stdin, trimmed, or "" when stdin
// is attached to a terminal. It lets the query come from a pipe when the
// -q flag and the config file left it unset.
func PipedQuery() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", nil
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}
