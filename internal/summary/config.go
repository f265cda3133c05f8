package summary

import (
	"time"

	"github.com/go-logr/logr"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	Provider       string
	ModelName      string
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	OllamaURL      string
	MaxTokens      int
	Temperature    float64
	MaxQueryLength int // prompts longer than this many characters are rejected
	CallTimeout    time.Duration
	Prompt         PromptTemplate
	Logger         logr.Logger
}
