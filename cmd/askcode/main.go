package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sokinpui/askcode/askcode"
	"github.com/sokinpui/askcode/cli"
	"github.com/sokinpui/askcode/config"
	"github.com/sokinpui/askcode/extract"
	"github.com/sokinpui/askcode/internal/source"
	"github.com/sokinpui/askcode/internal/tui"
	"github.com/sokinpui/askcode/internal/ui"
	"github.com/sokinpui/askcode/model"
)

func main() {
	flags, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := askcode.New(cfg)
	if flags.Extract {
		app.SetExtractor(extract.Markdown{})
	}

	ctx := context.Background()

	var summary model.Summary
	if flags.NoAnimation {
		summary, err = app.Execute(ctx)
		if err == nil {
			ui.PrintSummary(summary.Reply, summary.DiffFiles, summary.OutputDir, summary.Message)
		}
	} else {
		summary, err = runTUI(ctx, app)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.Copy && summary.Reply != "" {
		if err := clipboard.WriteAll(summary.Reply); err != nil {
			ui.Warning("Failed to copy reply to clipboard: %v", err)
		}
	}
}

// resolveConfig merges flag values over the config file over built-in
// defaults and validates the result. A piped stdin can stand in for a
// missing query.
func resolveConfig(flags *cli.Config) (config.Config, error) {
	fileCfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Merge(config.Config{
		Directory:  flags.Directory,
		Extensions: flags.Extensions,
		Query:      flags.Query,
		APIURL:     flags.APIURL,
		APIKey:     flags.APIKey,
		Model:      flags.Model,
		OutputDir:  flags.OutputDir,
	}, fileCfg)

	if cfg.Query == "" {
		query, err := source.PipedQuery()
		if err != nil {
			return config.Config{}, err
		}
		cfg.Query = query
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runTUI(ctx context.Context, app *askcode.App) (model.Summary, error) {
	m := tui.New(ctx, app)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return model.Summary{}, fmt.Errorf("error running program: %w", err)
	}
	return final.(tui.Model).Summary()
}
