package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
)

type Config struct {
	Execution   ExecutionConfig   `yaml:"execution"`
	Local       LocalConfig       `yaml:"local"`
	Remote      RemoteConfig      `yaml:"remote"`
	Request     RequestConfig     `yaml:"request"`
	Prompts     PromptsConfig     `yaml:"prompts"`
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ExecutionConfig struct {
	Mode string `yaml:"mode"`
}

type LocalConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type RemoteConfig struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	JudgeModel string `yaml:"judge_model"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
}

type RequestConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// PromptsConfig overrides the built-in system instructions when set.
type PromptsConfig struct {
	Summary     string `yaml:"summary"`
	ActionItems string `yaml:"action_items"`
}

type ExtractionConfig struct {
	StripCodeFences bool `yaml:"strip_code_fences"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// envOverrides are read from the process environment after the YAML file.
// Empty values leave the file value untouched.
type envOverrides struct {
	Mode         string        `envconfig:"EXECUTION_ENV"`
	LocalModel   string        `envconfig:"LOCAL_MODEL_NAME"`
	LocalBaseURL string        `envconfig:"LOCAL_MODEL_BASE_URL"`
	Provider     string        `envconfig:"REMOTE_PROVIDER"`
	RemoteModel  string        `envconfig:"REMOTE_MODEL"`
	JudgeModel   string        `envconfig:"JUDGE_MODEL"`
	OpenAIKey    string        `envconfig:"OPENAI_API_KEY"`
	GeminiKey    string        `envconfig:"GEMINI_API_KEY"`
	RemoteURL    string        `envconfig:"REMOTE_BASE_URL"`
	Timeout      time.Duration `envconfig:"REQUEST_TIMEOUT"`
	MaxAttempts  int           `envconfig:"REQUEST_MAX_ATTEMPTS"`
	LogLevel     string        `envconfig:"LOG_LEVEL"`
}

// Load reads the YAML file at path, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setString(&c.Execution.Mode, env.Mode)
	setString(&c.Local.Model, env.LocalModel)
	setString(&c.Local.BaseURL, env.LocalBaseURL)
	setString(&c.Remote.Provider, env.Provider)
	setString(&c.Remote.Model, env.RemoteModel)
	setString(&c.Remote.JudgeModel, env.JudgeModel)
	setString(&c.Remote.BaseURL, env.RemoteURL)
	setString(&c.Logging.Level, env.LogLevel)

	c.Remote.Provider = strings.ToLower(strings.TrimSpace(c.Remote.Provider))
	if c.Remote.Provider == backend.ProviderGemini {
		setString(&c.Remote.APIKey, env.GeminiKey)
	} else {
		setString(&c.Remote.APIKey, env.OpenAIKey)
	}

	if env.Timeout > 0 {
		c.Request.Timeout = env.Timeout
	}
	if env.MaxAttempts > 0 {
		c.Request.MaxAttempts = env.MaxAttempts
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	if c.Execution.Mode == "" {
		c.Execution.Mode = string(backend.ModeLocal)
	}
	mode, err := backend.ParseMode(c.Execution.Mode)
	if err != nil {
		return fmt.Errorf("execution.mode: %w", err)
	}
	c.Execution.Mode = string(mode)

	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Request.Timeout < 0 {
		return fmt.Errorf("request.timeout must not be negative")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Local.Model == "" {
		c.Local.Model = "llama3"
	}
	if c.Local.BaseURL == "" {
		c.Local.BaseURL = "http://localhost:11434"
	}
	c.Remote.Provider = strings.ToLower(strings.TrimSpace(c.Remote.Provider))
	if c.Remote.Provider == "" {
		c.Remote.Provider = backend.ProviderOpenAI
	}
	if c.Remote.Model == "" {
		if c.Remote.Provider == backend.ProviderGemini {
			c.Remote.Model = "gemini-2.5-flash"
		} else {
			c.Remote.Model = "gpt-4"
		}
	}
	if c.Request.Timeout == 0 {
		c.Request.Timeout = 2 * time.Minute
	}
	if c.Request.MaxAttempts == 0 {
		c.Request.MaxAttempts = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

// Backend projects the configuration onto the settings a backend is resolved from.
func (c *Config) Backend() backend.Settings {
	return backend.Settings{
		Mode:             c.Execution.Mode,
		LocalModel:       c.Local.Model,
		LocalBaseURL:     c.Local.BaseURL,
		RemoteProvider:   c.Remote.Provider,
		RemoteModel:      c.Remote.Model,
		JudgeModel:       c.Remote.JudgeModel,
		RemoteCredential: c.Remote.APIKey,
		RemoteBaseURL:    c.Remote.BaseURL,
		Timeout:          c.Request.Timeout,
		MaxAttempts:      c.Request.MaxAttempts,
	}
}
