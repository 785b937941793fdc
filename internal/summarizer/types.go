package summarizer

import (
	"encoding/json"
	"fmt"
)

// FailureKind tags why a generation call did not produce a usable value.
type FailureKind string

const (
	FailureConfiguration FailureKind = "configuration"
	FailureBackend       FailureKind = "backend_call"
	FailureInvalidJSON   FailureKind = "invalid_json"
	FailureSchema        FailureKind = "schema_mismatch"
)

const (
	summaryErrorPrefix = "Error: Could not generate summary due to API issue: "
	invalidJSONMessage = "Invalid JSON returned from model"
	schemaMessage      = "Action items do not match expected schema: "
	apiFailedMessage   = "API call failed: "
)

type Failure struct {
	Kind FailureKind
	Err  error
	// RawOutput is the model reply that could not be used. Empty when the
	// backend call itself failed.
	RawOutput string
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailureInvalidJSON:
		return invalidJSONMessage
	case FailureSchema:
		return schemaMessage + f.Err.Error()
	default:
		return apiFailedMessage + f.Err.Error()
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// SummaryResult always carries a printable Text. On failure Text is an error
// sentence and Failure says why.
type SummaryResult struct {
	Text    string
	Failure *Failure
}

func (r SummaryResult) OK() bool { return r.Failure == nil }

func summaryFailure(kind FailureKind, err error) SummaryResult {
	return SummaryResult{
		Text:    summaryErrorPrefix + err.Error(),
		Failure: &Failure{Kind: kind, Err: err},
	}
}

// ActionItems is the typed view of a successfully extracted record.
type ActionItems struct {
	IndividualActions map[string][]string `json:"individual_actions"`
	TeamActions       []string            `json:"team_actions"`
	Entities          []string            `json:"entities"`
}

type ActionItemResult struct {
	Items   *ActionItems
	Failure *Failure
	record  map[string]any
}

func (r ActionItemResult) OK() bool { return r.Failure == nil }

// Record returns the wire form: the parsed reply key-for-key on success, or
// an object with exactly "error" and "raw_output" on failure.
func (r ActionItemResult) Record() map[string]any {
	if r.Failure != nil {
		return map[string]any{
			"error":      r.Failure.Error(),
			"raw_output": r.Failure.RawOutput,
		}
	}
	return r.record
}

// JSON renders Record as indented JSON.
func (r ActionItemResult) JSON() (string, error) {
	b, err := json.MarshalIndent(r.Record(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode action items: %w", err)
	}
	return string(b), nil
}

func actionItemFailure(kind FailureKind, err error, raw string) ActionItemResult {
	return ActionItemResult{Failure: &Failure{Kind: kind, Err: err, RawOutput: raw}}
}
