package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	ServerPort string
	LogLevel   string
	LogFormat  string

	GitHubOwner          string
	GitHubRepo           string
	GitHubWebhookSecret  string
	GitHubToken          string
	GitHubAppID          int64
	GitHubPrivateKeyPath string

	TriggerPhrase string

	LLMProvider    string
	LLMAPIEndpoint string
	LLMModelName   string
	LLMAPIKey      string
	LLMCtxSize     int

	MaxWorkers int
}

// LoadConfig reads configuration from environment variables and an optional
// .env file and sets defaults. Environment variables take precedence over the
// .env file. Callers validate the result with Validate or ValidateForCLI
// depending on which surface they run.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("TRIGGER_PHRASE", "flows review")
	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("LLM_CTX_SIZE", 126000)
	v.SetDefault("MAX_WORKERS", 5)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .env file: %w", err)
		}
	}

	cfg := &Config{
		ServerPort:           v.GetString("SERVER_PORT"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		GitHubOwner:          v.GetString("GITHUB_OWNER"),
		GitHubRepo:           v.GetString("GITHUB_REPO"),
		GitHubWebhookSecret:  v.GetString("GITHUB_WEBHOOK_SECRET"),
		GitHubToken:          v.GetString("GITHUB_TOKEN"),
		GitHubAppID:          v.GetInt64("GITHUB_APP_ID"),
		GitHubPrivateKeyPath: v.GetString("GITHUB_PRIVATE_KEY_PATH"),
		TriggerPhrase:        v.GetString("TRIGGER_PHRASE"),
		LLMProvider:          v.GetString("LLM_PROVIDER"),
		LLMAPIEndpoint:       v.GetString("LLM_API_ENDPOINT"),
		LLMModelName:         v.GetString("LLM_MODEL_NAME"),
		LLMAPIKey:            v.GetString("LLM_API_KEY"),
		LLMCtxSize:           v.GetInt("LLM_CTX_SIZE"),
		MaxWorkers:           v.GetInt("MAX_WORKERS"),
	}
	return cfg, nil
}

// Validate checks that every setting required to run the webhook service is
// present and consistent.
func (c *Config) Validate() error {
	var missing []string
	if c.GitHubOwner == "" {
		missing = append(missing, "GITHUB_OWNER")
	}
	if c.GitHubRepo == "" {
		missing = append(missing, "GITHUB_REPO")
	}
	if c.GitHubWebhookSecret == "" {
		missing = append(missing, "GITHUB_WEBHOOK_SECRET")
	}
	if c.LLMAPIEndpoint == "" {
		missing = append(missing, "LLM_API_ENDPOINT")
	}
	if c.LLMModelName == "" {
		missing = append(missing, "LLM_MODEL_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.GitHubToken == "" && c.GitHubAppID == 0 {
		return fmt.Errorf("either GITHUB_TOKEN or GITHUB_APP_ID must be set")
	}
	if c.GitHubAppID != 0 && c.GitHubPrivateKeyPath == "" {
		return fmt.Errorf("GITHUB_PRIVATE_KEY_PATH must be set when GITHUB_APP_ID is used")
	}
	if c.LLMCtxSize <= 0 {
		return fmt.Errorf("LLM_CTX_SIZE must be positive, got %d", c.LLMCtxSize)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("MAX_WORKERS must be positive, got %d", c.MaxWorkers)
	}
	return nil
}

// ValidateForCLI checks the subset of settings local tools need. They talk to
// GitHub with a personal access token and never receive webhooks, so the App
// credentials and webhook secret are not required.
func (c *Config) ValidateForCLI() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN must be set")
	}
	if c.LLMModelName == "" {
		return fmt.Errorf("LLM_MODEL_NAME must be set")
	}
	switch c.LLMProvider {
	case "openai", "":
		if c.LLMAPIEndpoint == "" {
			return fmt.Errorf("LLM_API_ENDPOINT must be set for the openai provider")
		}
	case "anthropic":
		if c.LLMAPIKey == "" {
			return fmt.Errorf("LLM_API_KEY must be set for the anthropic provider")
		}
	}
	if c.LLMCtxSize <= 0 {
		return fmt.Errorf("LLM_CTX_SIZE must be positive, got %d", c.LLMCtxSize)
	}
	return nil
}
