package extract

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sokinpui/askcode/model"
)

// filePathRegex extracts the target file path from a '+++ b/...' line.
var filePathRegex = regexp.MustCompile(`(?m)^\+\+\+ b/(?P<path>.*?)(\s|$)`)

// Markdown extracts diffs from replies that wrap them in fenced code blocks
// tagged "diff". The file path comes from the '+++ b/' line inside the
// block; the paragraph immediately preceding the block, if any, becomes the
// record's summary. Blocks without a derivable path are skipped.
type Markdown struct{}

func (Markdown) Extract(reply string) []model.DiffRecord {
	source := []byte(reply)
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source))

	var records []model.DiffRecord
	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fenced, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if fenced.Info == nil || string(fenced.Info.Text(source)) != "diff" {
			return ast.WalkSkipChildren, nil
		}

		var content bytes.Buffer
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content.Write(line.Value(source))
		}
		diff := content.String()

		path := pathFromDiff(diff)
		if path == "" {
			return ast.WalkSkipChildren, nil
		}

		var summary string
		if prev := fenced.PreviousSibling(); prev != nil {
			if p, ok := prev.(*ast.Paragraph); ok {
				summary = strings.TrimSpace(string(p.Text(source)))
			}
		}

		records = append(records, model.DiffRecord{
			FilePath:    path,
			DiffContent: diff,
			Summary:     summary,
		})
		return ast.WalkSkipChildren, nil
	}

	// Walk cannot fail here: the walker never returns an error.
	_ = ast.Walk(root, walker)
	return records
}

func pathFromDiff(content string) string {
	match := filePathRegex.FindStringSubmatch(content)
	if len(match) > 1 {
		return strings.TrimSpace(match[1])
	}
	return ""
}
