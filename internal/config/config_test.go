package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		ServerPort:          "8080",
		GitHubOwner:         "octocat",
		GitHubRepo:          "hello-world",
		GitHubWebhookSecret: "s3cret",
		GitHubToken:         "ghp_token",
		TriggerPhrase:       "flows review",
		LLMProvider:         "openai",
		LLMAPIEndpoint:      "https://llm.example.com/v1",
		LLMModelName:        "yicoder9b",
		LLMCtxSize:          126000,
		MaxWorkers:          5,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing owner",
			mutate:  func(c *Config) { c.GitHubOwner = "" },
			wantErr: "GITHUB_OWNER",
		},
		{
			name:    "missing repo",
			mutate:  func(c *Config) { c.GitHubRepo = "" },
			wantErr: "GITHUB_REPO",
		},
		{
			name:    "missing webhook secret",
			mutate:  func(c *Config) { c.GitHubWebhookSecret = "" },
			wantErr: "GITHUB_WEBHOOK_SECRET",
		},
		{
			name: "missing owner and endpoint reported together",
			mutate: func(c *Config) {
				c.GitHubOwner = ""
				c.LLMAPIEndpoint = ""
			},
			wantErr: "GITHUB_OWNER, LLM_API_ENDPOINT",
		},
		{
			name: "no auth mode",
			mutate: func(c *Config) {
				c.GitHubToken = ""
				c.GitHubAppID = 0
			},
			wantErr: "either GITHUB_TOKEN or GITHUB_APP_ID",
		},
		{
			name: "app mode without private key",
			mutate: func(c *Config) {
				c.GitHubToken = ""
				c.GitHubAppID = 12345
				c.GitHubPrivateKeyPath = ""
			},
			wantErr: "GITHUB_PRIVATE_KEY_PATH",
		},
		{
			name: "app mode with private key is valid",
			mutate: func(c *Config) {
				c.GitHubToken = ""
				c.GitHubAppID = 12345
				c.GitHubPrivateKeyPath = "keys/app.pem"
			},
		},
		{
			name:    "non-positive context size",
			mutate:  func(c *Config) { c.LLMCtxSize = 0 },
			wantErr: "LLM_CTX_SIZE",
		},
		{
			name:    "non-positive worker count",
			mutate:  func(c *Config) { c.MaxWorkers = -1 },
			wantErr: "MAX_WORKERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GITHUB_OWNER", "octocat")
	t.Setenv("GITHUB_REPO", "hello-world")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "s3cret")
	t.Setenv("GITHUB_TOKEN", "ghp_token")
	t.Setenv("LLM_API_ENDPOINT", "https://llm.example.com/v1")
	t.Setenv("LLM_MODEL_NAME", "yicoder9b")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.TriggerPhrase != "flows review" {
		t.Errorf("TriggerPhrase = %q, want \"flows review\"", cfg.TriggerPhrase)
	}
	if cfg.LLMCtxSize != 126000 {
		t.Errorf("LLMCtxSize = %d, want 126000", cfg.LLMCtxSize)
	}
	if cfg.LLMProvider != "openai" {
		t.Errorf("LLMProvider = %q, want openai", cfg.LLMProvider)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("log defaults = %q/%q, want info/json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.MaxWorkers != 5 {
		t.Errorf("MaxWorkers = %d, want 5", cfg.MaxWorkers)
	}
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("GITHUB_OWNER", "octocat")
	t.Setenv("GITHUB_REPO", "hello-world")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "s3cret")
	t.Setenv("GITHUB_TOKEN", "ghp_token")
	t.Setenv("LLM_API_ENDPOINT", "https://llm.example.com/v1")
	t.Setenv("LLM_MODEL_NAME", "yicoder9b")
	t.Setenv("TRIGGER_PHRASE", "please review")
	t.Setenv("LLM_CTX_SIZE", "8000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.TriggerPhrase != "please review" {
		t.Errorf("TriggerPhrase = %q, want \"please review\"", cfg.TriggerPhrase)
	}
	if cfg.LLMCtxSize != 8000 {
		t.Errorf("LLMCtxSize = %d, want 8000", cfg.LLMCtxSize)
	}
}

func TestLoadConfig_DoesNotValidate(t *testing.T) {
	t.Setenv("GITHUB_OWNER", "")
	t.Setenv("GITHUB_REPO", "")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("LLM_API_ENDPOINT", "")
	t.Setenv("LLM_MODEL_NAME", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for empty environment, got nil")
	}
}

func TestConfig_ValidateForCLI(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name: "webhook settings not required",
			mutate: func(c *Config) {
				c.GitHubOwner = ""
				c.GitHubRepo = ""
				c.GitHubWebhookSecret = ""
			},
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.GitHubToken = "" },
			wantErr: "GITHUB_TOKEN",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.LLMModelName = "" },
			wantErr: "LLM_MODEL_NAME",
		},
		{
			name: "openai provider without endpoint",
			mutate: func(c *Config) {
				c.LLMProvider = ""
				c.LLMAPIEndpoint = ""
			},
			wantErr: "LLM_API_ENDPOINT",
		},
		{
			name: "anthropic provider without key",
			mutate: func(c *Config) {
				c.LLMProvider = "anthropic"
				c.LLMAPIKey = ""
			},
			wantErr: "LLM_API_KEY",
		},
		{
			name:    "non-positive context size",
			mutate:  func(c *Config) { c.LLMCtxSize = 0 },
			wantErr: "LLM_CTX_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.ValidateForCLI()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateForCLI() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateForCLI() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateForCLI() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
