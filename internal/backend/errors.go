package backend

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedMode     = errors.New("unsupported execution environment")
	ErrUnsupportedProvider = errors.New("unsupported remote provider")
	ErrMissingCredential   = errors.New("remote credential not configured")
	ErrEmptyResponse       = errors.New("empty response from model")
	ErrInvalidJudgement    = errors.New("invalid judgement from grader")
)

// ConfigError reports a setting that cannot be resolved to a backend.
// It is returned before any network activity takes place.
type ConfigError struct {
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx reply from a provider endpoint.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Provider, e.Code)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Code, e.Body)
}
