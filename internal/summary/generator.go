package summary

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"

	"github.com/roivaz/pr-summary/internal/logging"
)

// Generator turns a diff bundle into a pull request summary with a single
// completion request.
type Generator struct {
	cfg    Config
	log    logging.Logger
	model  Model
	prompt PromptTemplate
}

func NewGenerator(cfg Config, model Model) (*Generator, error) {
	if model == nil {
		return nil, fmt.Errorf("completion model is required")
	}
	return &Generator{
		cfg:    cfg,
		log:    logging.New(cfg.Logger).WithName("summary"),
		model:  model,
		prompt: cfg.Prompt.withDefaults(),
	}, nil
}

// Summarize returns the text to post: the model output, or Sentinel.
func (g *Generator) Summarize(ctx context.Context, diff string) string {
	return g.Generate(ctx, diff).Text
}

// Generate never returns an error; failures are logged and reported through
// the Result with Text set to Sentinel.
func (g *Generator) Generate(ctx context.Context, diff string) Result {
	text, err := g.complete(ctx, g.prompt.Build(diff))
	if err != nil {
		g.log.Error(err, "summary generation failed")
		reason, category := GetFailureDetails(err)
		return Result{Text: Sentinel, FailureReason: reason, FailureCategory: category}
	}
	return Result{Text: text, Successful: true}
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	length := utf8.RuneCountInString(prompt)
	if length > g.cfg.MaxQueryLength {
		return "", fmt.Errorf("%w: prompt is %d characters, limit %d", ErrQueryTooLarge, length, g.cfg.MaxQueryLength)
	}
	if g.log.DebugEnabled() {
		g.log.Debug("summary prompt",
			"prompt", prompt,
			"prompt_tokens", promptTokens(g.cfg.ModelName, prompt),
		)
	}
	g.log.Info("requesting summary",
		"model", g.cfg.ModelName,
		"prompt_chars", length,
		"max_tokens", g.cfg.MaxTokens,
	)

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextContent{Text: prompt}},
		},
	}
	resp, err := g.model.GenerateContent(ctx, messages,
		llms.WithModel(g.cfg.ModelName),
		llms.WithMaxTokens(g.cfg.MaxTokens),
		llms.WithTemperature(g.cfg.Temperature),
	)
	if err != nil {
		return "", g.annotateError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrEmptyResponse)
	}
	choice := resp.Choices[0]
	if choice == nil || choice.Content == "" {
		return "", fmt.Errorf("%w: first choice has no text", ErrEmptyResponse)
	}
	return choice.Content, nil
}
