package infra

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	LlmProviderOpenAI = "openai"
	LlmProviderGemini = "gemini"
)

type LlmConfig struct {
	Provider          string
	ApiKey            string
	BaseUrl           string
	Model             string
	Temperature       float32
	RequestsPerMinute int
	// Guidance is appended to the extraction instructions, one line per entry.
	Guidance []string
}

// extractionConfigFile is the optional YAML file tuning the extraction without a redeploy.
type extractionConfigFile struct {
	Provider          string   `yaml:"provider"`
	Model             string   `yaml:"model"`
	Temperature       *float32 `yaml:"temperature"`
	RequestsPerMinute int      `yaml:"requests_per_minute"`
	Guidance          []string `yaml:"guidance"`
}

// WithConfigFile overrides the environment configuration with the non-empty values of the YAML file at path.
func (config LlmConfig) WithConfigFile(path string) (LlmConfig, error) {
	if path == "" {
		return config, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "could not read extraction config file %s", path)
	}

	var file extractionConfigFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return config, errors.Wrapf(err, "could not parse extraction config file %s", path)
	}

	if file.Provider != "" {
		config.Provider = strings.ToLower(file.Provider)
	}
	if file.Model != "" {
		config.Model = file.Model
	}
	if file.Temperature != nil {
		config.Temperature = *file.Temperature
	}
	if file.RequestsPerMinute > 0 {
		config.RequestsPerMinute = file.RequestsPerMinute
	}
	config.Guidance = append(config.Guidance, file.Guidance...)

	return config, nil
}

// Completer sends one instruction + input pair to a language model and returns its raw text answer.
type Completer interface {
	Complete(ctx context.Context, instructions, input string) (string, error)
}

func NewCompleter(ctx context.Context, config LlmConfig) (Completer, error) {
	switch strings.ToLower(config.Provider) {
	case LlmProviderOpenAI, "":
		return NewOpenAICompleter(config), nil
	case LlmProviderGemini:
		return NewGeminiCompleter(ctx, config)
	default:
		return nil, errors.Newf("unknown llm provider %q", config.Provider)
	}
}
