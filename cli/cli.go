package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values for the assistant.
type Config struct {
	Directory   string
	Extensions  []string
	Query       string
	ConfigPath  string
	APIURL      string
	APIKey      string
	Model       string
	OutputDir   string
	Extract     bool
	Copy        bool
	NoAnimation bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	pflag.StringVarP(&cfg.Directory, "directory", "d", "", "The root directory of the project.")
	pflag.StringSliceVarP(&cfg.Extensions, "extensions", "e", []string{}, "File extensions to look for (e.g., .py .js .html).")
	pflag.StringVarP(&cfg.Query, "query", "q", "", "The query to ask the LLM about the code.")
	pflag.StringVarP(&cfg.ConfigPath, "config", "c", "llm_config.json", "Path to a JSON configuration file.")
	pflag.StringVarP(&cfg.APIURL, "api_url", "u", "", "API endpoint URL.")
	pflag.StringVarP(&cfg.APIKey, "api_key", "k", "", "API key for the LLM service.")
	pflag.StringVarP(&cfg.Model, "model", "m", "", "LLM model to use.")
	pflag.StringVarP(&cfg.OutputDir, "output_dir", "o", "", "Directory to save the diff files.")

	pflag.BoolVar(&cfg.Extract, "extract", false, "Extract ```diff blocks from the reply and save them as .diff files.")
	pflag.BoolVar(&cfg.Copy, "copy", false, "Copy the model's reply to the clipboard.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the loading spinner; print plain output.")

	pflag.Usage = func() {
		fmt.Println("Usage: askcode [flags]")
		fmt.Println("\nAutomate code analysis and changes using LLMs.")
		fmt.Println("\nExample: askcode -d . -e .go -q \"find data races\"")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() > 0 {
		return nil, fmt.Errorf("error: unexpected positional arguments: %v", pflag.Args())
	}

	return cfg, nil
}
