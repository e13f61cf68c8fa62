package askcode

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/sokinpui/askcode/config"
	"github.com/sokinpui/askcode/extract"
	"github.com/sokinpui/askcode/internal/collector"
	"github.com/sokinpui/askcode/internal/diffwriter"
	"github.com/sokinpui/askcode/internal/llm"
	"github.com/sokinpui/askcode/internal/payload"
	"github.com/sokinpui/askcode/internal/prompt"
	"github.com/sokinpui/askcode/model"
)

// App orchestrates one assistant run: collect files, build the payload,
// query the model, and write out any extracted diffs.
type App struct {
	cfg       config.Config
	client    *llm.Client
	extractor extract.Extractor
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance. The diff extractor defaults to the no-op
// baseline; use SetExtractor to supply a parsing strategy.
func New(cfg config.Config) *App {
	return &App{
		cfg:       cfg,
		client:    llm.New(cfg.APIURL, cfg.APIKey),
		extractor: extract.Noop{},
	}
}

// SetExtractor replaces the diff extraction strategy.
func (a *App) SetExtractor(e extract.Extractor) {
	if e != nil {
		a.extractor = e
	}
}

// Execute runs the full pipeline and returns a summary for display.
//
// An HTTP error status from the endpoint and a response without choices are
// reported through Summary.Message rather than as errors: the run ends
// gracefully with no diffs written. Filesystem and transport failures are
// returned as errors.
func (a *App) Execute(ctx context.Context) (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	files, err := collector.Collect(a.cfg.Directory, a.cfg.Extensions)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to collect code files: %w", err)
	}

	code, err := payload.Build(a.cfg.Directory, files)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to build payload: %w", err)
	}

	userPrompt := prompt.Compose(a.cfg.Query, code)

	resp, err := a.client.Chat(ctx, a.cfg.Model, prompt.System, userPrompt)
	if err != nil {
		var statusErr *llm.StatusError
		if errors.As(err, &statusErr) {
			return model.Summary{
				Message: fmt.Sprintf("Error while communicating with the LLM: HTTP %d\nResponse: %s", statusErr.Code, statusErr.Body),
			}, nil
		}
		return model.Summary{}, err
	}

	reply, ok := resp.Reply()
	if !ok {
		return model.Summary{Message: "No valid response from the LLM."}, nil
	}

	summary = model.Summary{Reply: reply, OutputDir: a.cfg.OutputDir}

	records := a.extractor.Extract(reply)
	if len(records) == 0 {
		return summary, nil
	}

	written, err := diffwriter.Write(records, a.cfg.OutputDir)
	if err != nil {
		return model.Summary{}, err
	}
	summary.DiffFiles = written
	return summary, nil
}
