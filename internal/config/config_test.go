package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Execution: ExecutionConfig{Mode: "cloud"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "mode defaults to local",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "unsupported mode",
			config: Config{
				Execution: ExecutionConfig{Mode: "hybrid"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Execution: ExecutionConfig{Mode: "local"},
				Paths:     PathsConfig{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Input: "in", Output: "out"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Execution.Mode != "local" {
		t.Errorf("Mode = %v, want local", cfg.Execution.Mode)
	}
	if cfg.Local.Model != "llama3" {
		t.Errorf("Local.Model = %v, want llama3", cfg.Local.Model)
	}
	if cfg.Local.BaseURL != "http://localhost:11434" {
		t.Errorf("Local.BaseURL = %v", cfg.Local.BaseURL)
	}
	if cfg.Remote.Provider != "openai" || cfg.Remote.Model != "gpt-4" {
		t.Errorf("Remote = %+v", cfg.Remote)
	}
	if cfg.Request.Timeout != 2*time.Minute {
		t.Errorf("Request.Timeout = %v", cfg.Request.Timeout)
	}
	if cfg.Request.MaxAttempts != 1 {
		t.Errorf("Request.MaxAttempts = %v, want 1", cfg.Request.MaxAttempts)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("Performance.MaxConcurrent = %v, want 1", cfg.Performance.MaxConcurrent)
	}
	if cfg.Paths.Archived != "data/archived" {
		t.Errorf("Paths.Archived = %v", cfg.Paths.Archived)
	}
}

func TestValidateUnsupportedModeIsConfigError(t *testing.T) {
	cfg := Config{
		Execution: ExecutionConfig{Mode: "edge"},
		Paths:     PathsConfig{Input: "in", Output: "out"},
	}
	err := cfg.Validate()
	if !errors.Is(err, backend.ErrUnsupportedMode) {
		t.Errorf("Validate() error = %v, want ErrUnsupportedMode", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// clearEnv blanks the string overrides so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"EXECUTION_ENV", "LOCAL_MODEL_NAME", "LOCAL_MODEL_BASE_URL", "REMOTE_PROVIDER",
		"REMOTE_MODEL", "JUDGE_MODEL", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"REMOTE_BASE_URL", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
execution:
  mode: "cloud"

local:
  model: "mistral"
  base_url: "http://ollama:11434"

remote:
  provider: "openai"
  model: "gpt-4o"
  api_key: "from-file"

request:
  timeout: 45s
  max_attempts: 3

paths:
  input: "data/transcripts"
  output: "data/output"

logging:
  level: "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Execution.Mode != "cloud" {
		t.Errorf("Mode = %v, want %v", cfg.Execution.Mode, "cloud")
	}
	if cfg.Remote.Model != "gpt-4o" {
		t.Errorf("Remote.Model = %v, want %v", cfg.Remote.Model, "gpt-4o")
	}
	if cfg.Request.Timeout != 45*time.Second {
		t.Errorf("Request.Timeout = %v, want 45s", cfg.Request.Timeout)
	}
	if cfg.Paths.Input != "data/transcripts" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/transcripts")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
execution:
  mode: "local"
remote:
  api_key: "from-file"
paths:
  input: "in"
  output: "out"
`)

	clearEnv(t)
	t.Setenv("EXECUTION_ENV", "CLOUD")
	t.Setenv("LOCAL_MODEL_NAME", "phi3")
	t.Setenv("LOCAL_MODEL_BASE_URL", "http://gpu-box:11434")
	t.Setenv("REMOTE_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("REQUEST_MAX_ATTEMPTS", "4")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	settings := cfg.Backend()
	want := backend.Settings{
		Mode:             "cloud",
		LocalModel:       "phi3",
		LocalBaseURL:     "http://gpu-box:11434",
		RemoteProvider:   "openai",
		RemoteModel:      "gpt-4o-mini",
		RemoteCredential: "sk-env",
		Timeout:          10 * time.Second,
		MaxAttempts:      4,
	}
	if settings != want {
		t.Errorf("Backend() = %+v, want %+v", settings, want)
	}
}

func TestLoadProviderCredential(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		wantKey   string
		wantModel string
	}{
		{"gemini", "gemini", "gm-key", "gemini-2.5-flash"},
		{"gemini with padding and case", " Gemini ", "gm-key", "gemini-2.5-flash"},
		{"openai", "openai", "sk-openai", "gpt-4"},
		{"unset defaults to openai", "", "sk-openai", "gpt-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, fmt.Sprintf(`
remote:
  provider: %q
paths:
  input: "in"
  output: "out"
`, tt.provider))
			clearEnv(t)
			t.Setenv("OPENAI_API_KEY", "sk-openai")
			t.Setenv("GEMINI_API_KEY", "gm-key")

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Remote.APIKey != tt.wantKey {
				t.Errorf("APIKey = %v, want %v", cfg.Remote.APIKey, tt.wantKey)
			}
			if cfg.Remote.Model != tt.wantModel {
				t.Errorf("Remote.Model = %v, want %v", cfg.Remote.Model, tt.wantModel)
			}
		})
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() missing file error = %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOCAL_MODEL_NAME=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOCAL_MODEL_NAME", "")
	os.Unsetenv("LOCAL_MODEL_NAME")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("LOCAL_MODEL_NAME"); got != "from-dotenv" {
		t.Errorf("LOCAL_MODEL_NAME = %q, want from-dotenv", got)
	}
}
