package backend

import (
	"strings"
	"time"
)

// Mode selects between a locally hosted model and a remote hosted one.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeCloud Mode = "cloud"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ParseMode normalizes s and rejects anything other than local or cloud.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLocal, ModeCloud:
		return m, nil
	default:
		return "", &ConfigError{Value: s, Err: ErrUnsupportedMode}
	}
}

// Settings is the resolved configuration a backend is built from. It is
// copied into every component at construction time.
type Settings struct {
	Mode             string
	LocalModel       string
	LocalBaseURL     string
	RemoteProvider   string
	RemoteModel      string
	JudgeModel       string
	RemoteCredential string
	RemoteBaseURL    string
	Timeout          time.Duration
	MaxAttempts      int
}
