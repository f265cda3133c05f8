package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/roivaz/pr-summary/internal/config"
	"github.com/roivaz/pr-summary/internal/summary"
)

type Config struct {
	GitHubToken   string
	GitHubAPIURL  string
	PostOnFailure bool // post the sentinel text when generation fails
	PostgresURL   string
	DBDebug       bool
	Summary       summary.Config
	Logger        logr.Logger
}

func LoadConfig() (Config, error) {
	prompt, err := summary.LoadPromptFile(config.PromptFile())
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		GitHubToken:   config.GitHubToken(),
		GitHubAPIURL:  config.GitHubAPIURL(),
		PostOnFailure: config.PostOnFailure(),
		PostgresURL:   config.PostgresURL(),
		DBDebug:       config.DBDebug(),
		Summary: summary.Config{
			Provider:       strings.ToLower(config.LLMProvider()),
			ModelName:      config.ModelName(),
			OpenAIAPIKey:   config.OpenAIAPIKey(),
			OpenAIBaseURL:  config.OpenAIBaseURL(),
			OllamaURL:      config.OllamaURL(),
			MaxTokens:      config.MaxTokens(),
			Temperature:    config.Temperature(),
			MaxQueryLength: config.MaxQueryLength(),
			Prompt:         prompt,
		},
	}

	// viper reads a malformed integer as 0
	if cfg.Summary.MaxQueryLength <= 0 {
		return Config{}, fmt.Errorf("invalid max_open_ai_query_length: must be a positive integer")
	}

	timeout, err := parseDuration(config.LLMCallTimeout(), 2*time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid llm_call_timeout: %w", err)
	}
	cfg.Summary.CallTimeout = timeout

	return cfg, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
