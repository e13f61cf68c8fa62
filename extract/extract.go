package extract

import "github.com/sokinpui/askcode/model"

// Extractor turns a model's free-form reply into diff records. How diffs are
// recognized depends entirely on how the model was asked to format its
// output, so the parsing strategy is pluggable.
type Extractor interface {
	Extract(reply string) []model.DiffRecord
}

// Noop is the default extractor. It recognizes nothing and always returns an
// empty result, which keeps the assistant a read-only reporting tool until a
// real strategy is selected.
type Noop struct{}

func (Noop) Extract(string) []model.DiffRecord { return nil }
