package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Built-in defaults for the optional settings. The four settings without a
// default here (directory, extensions, query, api_key) must come from the
// command line or the config file.
const (
	DefaultAPIURL    = "https://api.openai.com/v1/chat/completions"
	DefaultModel     = "gpt-4"
	DefaultOutputDir = "./diffs"
)

// Config holds the effective settings for one assistant run. It is assembled
// once at startup by Merge and treated as read-only afterwards.
type Config struct {
	Directory  string   `json:"directory"`
	Extensions []string `json:"extensions"`
	Query      string   `json:"query"`
	APIURL     string   `json:"api_url"`
	APIKey     string   `json:"api_key"`
	Model      string   `json:"model"`
	OutputDir  string   `json:"output_dir"`
}

// Load reads a JSON config file. A missing file is not an error and yields a
// zero Config; a file that exists but does not parse is.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Merge resolves the effective configuration: a value given on the command
// line wins over the config file, which wins over the built-in defaults.
func Merge(flags, file Config) Config {
	cfg := Config{
		Directory:  firstOf(flags.Directory, file.Directory),
		Extensions: flags.Extensions,
		Query:      firstOf(flags.Query, file.Query),
		APIURL:     firstOf(flags.APIURL, file.APIURL, DefaultAPIURL),
		APIKey:     firstOf(flags.APIKey, file.APIKey),
		Model:      firstOf(flags.Model, file.Model, DefaultModel),
		OutputDir:  firstOf(flags.OutputDir, file.OutputDir, DefaultOutputDir),
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = file.Extensions
	}
	return cfg
}

// Validate reports the first required setting that is still unset after
// merging.
func (c Config) Validate() error {
	switch {
	case c.APIKey == "":
		return fmt.Errorf("API key is required. Provide it via command-line argument or in the configuration file")
	case c.Directory == "":
		return fmt.Errorf("directory is required. Provide it via command-line argument or in the configuration file")
	case len(c.Extensions) == 0:
		return fmt.Errorf("file extensions are required. Provide them via command-line argument or in the configuration file")
	case c.Query == "":
		return fmt.Errorf("query is required. Provide it via command-line argument, piped stdin, or in the configuration file")
	}
	return nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
