package shell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt        = "file-cli> "
	defaultPreviewLength = 50
)

var defaultObservers = []string{"slog"}

// Config holds shell presentation and observability settings.
type Config struct {
	Prompt        string   `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Quiet         bool     `json:"quiet,omitempty" yaml:"quiet,omitempty"`                   // suppress the welcome banner
	PreviewLength int      `json:"preview_length,omitempty" yaml:"preview_length,omitempty"` // characters shown by info
	Observers     []string `json:"observers,omitempty" yaml:"observers,omitempty"`           // observability registry names
}

// DefaultConfig returns the built-in shell configuration.
func DefaultConfig() Config {
	return Config{
		Prompt:        defaultPrompt,
		PreviewLength: defaultPreviewLength,
		Observers:     slices.Clone(defaultObservers),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Prompt != "" {
		c.Prompt = source.Prompt
	}
	if source.Quiet {
		c.Quiet = true
	}
	if source.PreviewLength > 0 {
		c.PreviewLength = source.PreviewLength
	}
	if len(source.Observers) > 0 {
		c.Observers = slices.Clone(source.Observers)
	}
}

// LoadConfig reads a JSON or YAML (.yaml, .yml) config file and merges it over
// the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to read config file %s", filename)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to parse config file %s", filename)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
