package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const dotenvFile = "manifests/config.env"

func Init(root *cobra.Command) {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = godotenv.Load(dotenvFile)
	if root != nil {
		// flags use dashes, keys use underscores
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLLMProvider, "openai")
	viper.SetDefault(KeyOllamaURL, "http://localhost:11434")
	viper.SetDefault(KeyModelName, "gpt-4o-mini")
	viper.SetDefault(KeyMaxTokens, 500)
	viper.SetDefault(KeyTemperature, 0.7)
	viper.SetDefault(KeyMaxQueryLength, 10000)
	viper.SetDefault(KeyLLMCallTimeout, "2m")
	viper.SetDefault(KeyPostOnFailure, true)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
}

func GitHubToken() string      { return viper.GetString(KeyGitHubToken) }
func GitHubAPIURL() string     { return viper.GetString(KeyGitHubAPIURL) }
func GitHubRepository() string { return viper.GetString(KeyGitHubRepository) }
func GitHubEventPath() string  { return viper.GetString(KeyGitHubEventPath) }
func PRNumber() int            { return viper.GetInt(KeyPRNumber) }
func LLMProvider() string      { return viper.GetString(KeyLLMProvider) }
func OpenAIAPIKey() string     { return viper.GetString(KeyOpenAIAPIKey) }
func OpenAIBaseURL() string    { return viper.GetString(KeyOpenAIBaseURL) }
func OllamaURL() string        { return viper.GetString(KeyOllamaURL) }
func ModelName() string        { return viper.GetString(KeyModelName) }
func MaxTokens() int           { return viper.GetInt(KeyMaxTokens) }
func Temperature() float64     { return viper.GetFloat64(KeyTemperature) }
func MaxQueryLength() int      { return viper.GetInt(KeyMaxQueryLength) }
func LLMCallTimeout() string   { return viper.GetString(KeyLLMCallTimeout) }
func PromptFile() string       { return viper.GetString(KeyPromptFile) }
func PostOnFailure() bool      { return viper.GetBool(KeyPostOnFailure) }
func PostgresURL() string      { return viper.GetString(KeyPostgresURL) }
func DBDebug() bool            { return viper.GetBool(KeyDBDebug) }
func LogLevel() string         { return viper.GetString(KeyLogLevel) }
func Host() string             { return viper.GetString(KeyHost) }
func Port() int                { return viper.GetInt(KeyPort) }
