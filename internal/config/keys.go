package config

const (
	KeyGitHubToken      = "github_token"
	KeyGitHubAPIURL     = "github_api_url"
	KeyGitHubRepository = "github_repository"
	KeyGitHubEventPath  = "github_event_path"
	KeyPRNumber         = "pr_number"
	KeyLLMProvider      = "llm_provider"
	KeyOpenAIAPIKey     = "openai_api_key"
	KeyOpenAIBaseURL    = "openai_base_url"
	KeyOllamaURL        = "ollama_url"
	KeyModelName        = "model_name"
	KeyMaxTokens        = "max_tokens"
	KeyTemperature      = "temperature"
	KeyMaxQueryLength   = "max_open_ai_query_length"
	KeyLLMCallTimeout   = "llm_call_timeout"
	KeyPromptFile       = "prompt_file"
	KeyPostOnFailure    = "post_on_failure"
	KeyPostgresURL      = "postgres_url"
	KeyDBDebug          = "db_debug"
	KeyLogLevel         = "log_level"
	KeyHost             = "host"
	KeyPort             = "port"
)
