package diffwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sokinpui/askcode/model"
)

const summaryMaxLen = 50

// Write saves each diff record to a file under outputDir, creating the
// directory if needed. The filename is derived from the base name of the
// record's target file and a slug of its summary; records whose derived
// names collide overwrite each other, last writer wins. Returns the paths of
// the written files in record order.
func Write(records []model.DiffRecord, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	written := make([]string, 0, len(records))
	for _, rec := range records {
		path := filepath.Join(outputDir, Filename(rec))
		if err := os.WriteFile(path, []byte(rec.DiffContent), 0644); err != nil {
			return nil, fmt.Errorf("failed to write diff file %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Filename derives the diff file name for a record:
// <basename>_<summary slug>.diff, with "unknown_file" and "changes" standing
// in for a missing path or summary.
func Filename(rec model.DiffRecord) string {
	base := rec.FilePath
	if base == "" {
		base = "unknown_file"
	}

	summary := rec.Summary
	if summary == "" {
		summary = "changes"
	}
	summary = strings.ReplaceAll(summary, " ", "_")
	if len(summary) > summaryMaxLen {
		summary = summary[:summaryMaxLen]
	}

	return fmt.Sprintf("%s_%s.diff", filepath.Base(base), summary)
}
