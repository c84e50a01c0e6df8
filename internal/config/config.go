package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Port string `yaml:"port"`

	// DataDir is the root of the blob store (articles/ and results/).
	DataDir string `yaml:"data_dir"`

	// APIKey enables bearer auth on /api when non-empty.
	APIKey string `yaml:"api_key"`

	// CitationStyle is the default extraction heuristic: "bracket" or
	// "wiki". Requests may override it per call.
	CitationStyle string `yaml:"citation_style"`

	// RenderHTML switches section content from plain text to rendered
	// HTML.
	RenderHTML bool `yaml:"render_html"`
}

// Load builds the configuration: defaults, then an optional YAML file
// named by ARTICLED_CONFIG, then environment overrides.
func Load() (Config, error) {
	cfg := Config{
		Port:          "8091",
		DataDir:       "data",
		CitationStyle: "wiki",
	}

	if path := os.Getenv("ARTICLED_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.DataDir = envOr("DATA_DIR", cfg.DataDir)
	cfg.APIKey = envOr("ARTICLED_API_KEY", cfg.APIKey)
	cfg.CitationStyle = envOr("CITATION_STYLE", cfg.CitationStyle)
	cfg.RenderHTML = envBool("RENDER_HTML", cfg.RenderHTML)

	return cfg, nil
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	switch c.CitationStyle {
	case "bracket", "wiki":
	default:
		return fmt.Errorf("unknown citation style %q", c.CitationStyle)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	}
	return fallback
}
