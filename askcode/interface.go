package askcode

import (
	"context"

	"github.com/sokinpui/askcode/config"
	"github.com/sokinpui/askcode/extract"
	"github.com/sokinpui/askcode/model"
)

// Ask runs the assistant pipeline for using askcode as a library. Defaults
// are applied to cfg and required settings are validated before anything
// touches the network or filesystem. A nil extractor keeps the no-op
// baseline.
func Ask(ctx context.Context, cfg config.Config, extractor extract.Extractor) (model.Summary, error) {
	cfg = config.Merge(cfg, config.Config{})
	if err := cfg.Validate(); err != nil {
		return model.Summary{}, err
	}

	app := New(cfg)
	app.SetExtractor(extractor)
	return app.Execute(ctx)
}
