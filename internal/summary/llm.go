package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Model is the part of a langchaingo LLM the generator needs.
type Model interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// NewModel builds the completion client selected by cfg.Provider.
func NewModel(cfg Config) (Model, error) {
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("llm model name is required")
	}
	httpClient := &http.Client{Timeout: 5 * time.Minute}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderOpenAI, "":
		opts := []openai.Option{
			openai.WithModel(cfg.ModelName),
			openai.WithHTTPClient(httpClient),
		}
		if cfg.OpenAIAPIKey != "" {
			opts = append(opts, openai.WithToken(cfg.OpenAIAPIKey))
		}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create openai client: %w", err)
		}
		return llm, nil
	case ProviderOllama:
		opts := []ollama.Option{
			ollama.WithModel(cfg.ModelName),
			ollama.WithHTTPClient(httpClient),
		}
		if cfg.OllamaURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.OllamaURL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("create ollama client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q (want %s or %s)", cfg.Provider, ProviderOpenAI, ProviderOllama)
	}
}

func (g *Generator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.cfg.CallTimeout)
}

func (g *Generator) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("llm call timed out after %s: %w", g.cfg.CallTimeout, err)
	}
	return err
}
