package payload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel is the literal marker inserted before each file's content in the
// payload. The model is told about it so it can address files by path.
const Sentinel = "$$NEWFILE$$"

// Build concatenates the content of the given files into a single string.
// Each file's content is preceded by a blank-line-padded header holding the
// sentinel and the file's path relative to root. Files are read whole; a
// file that cannot be read fails the entire build.
func Build(root string, files []string) (string, error) {
	var b strings.Builder
	for _, file := range files {
		content, err := os.ReadFile(filepath.Join(root, file))
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", file, err)
		}
		fmt.Fprintf(&b, "\n\n%s %s\n\n", Sentinel, file)
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
