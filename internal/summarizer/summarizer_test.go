package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

// fakeChat answers by system prompt so both calls can be scripted independently.
type fakeChat struct {
	summary     string
	actionItems string
	err         error
	prompts     []string
}

func (f *fakeChat) Name() string  { return "fake" }
func (f *fakeChat) Model() string { return "fake-model" }

func (f *fakeChat) SendChat(_ context.Context, systemPrompt, _ string) (string, error) {
	f.prompts = append(f.prompts, systemPrompt)
	if f.err != nil {
		return "", f.err
	}
	if systemPrompt == defaultSummaryPrompt {
		return f.summary, nil
	}
	return f.actionItems, nil
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return m
}

func TestActionItemsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{
			name:  "individual and team actions",
			reply: `{"individual_actions":{"Alice":["email the client by Friday"],"Bob":["file the report"]},"team_actions":["ship v2"],"entities":["Alice","Bob"]}`,
		},
		{
			name:  "empty record",
			reply: `{"individual_actions":{},"team_actions":[],"entities":[]}`,
		},
		{
			name:  "extra keys are kept",
			reply: `{"individual_actions":{},"team_actions":[],"entities":[],"meeting":"standup"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithChat(&fakeChat{actionItems: "\n" + tt.reply + "  "}, logger.NewNop())
			got := s.ActionItems(context.Background(), "transcript")

			if !got.OK() {
				t.Fatalf("ActionItems() failure = %v", got.Failure)
			}
			if diff := cmp.Diff(decode(t, tt.reply), got.Record()); diff != "" {
				t.Errorf("Record() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestActionItemsInvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantRaw string
	}{
		{"prose", "Sure! Alice will email the client.", "Sure! Alice will email the client."},
		{"truncated object", `{"individual_actions": {`, `{"individual_actions": {`},
		{"fenced json", "```json\n{\"entities\":[]}\n```", "```json\n{\"entities\":[]}\n```"},
		{"surrounding whitespace is trimmed", "  not json \n", "not json"},
		{"empty reply", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithChat(&fakeChat{actionItems: tt.reply}, logger.NewNop())
			got := s.ActionItems(context.Background(), "transcript")

			want := map[string]any{
				"error":      "Invalid JSON returned from model",
				"raw_output": tt.wantRaw,
			}
			if diff := cmp.Diff(want, got.Record()); diff != "" {
				t.Errorf("Record() mismatch (-want +got):\n%s", diff)
			}
			if got.Failure == nil || got.Failure.Kind != FailureInvalidJSON {
				t.Errorf("Failure = %+v, want kind %s", got.Failure, FailureInvalidJSON)
			}
		})
	}
}

func TestActionItemsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"array", `["Alice","Bob"]`},
		{"null", `null`},
		{"missing entities", `{"individual_actions":{},"team_actions":[]}`},
		{"team actions not a list", `{"individual_actions":{},"team_actions":"none","entities":[]}`},
		{"task is not a string", `{"individual_actions":{"Alice":[1]},"team_actions":[],"entities":["Alice"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithChat(&fakeChat{actionItems: tt.reply}, logger.NewNop())
			got := s.ActionItems(context.Background(), "transcript")

			if got.Failure == nil || got.Failure.Kind != FailureSchema {
				t.Fatalf("Failure = %+v, want kind %s", got.Failure, FailureSchema)
			}
			record := got.Record()
			if len(record) != 2 {
				t.Errorf("Record() has %d keys, want 2: %v", len(record), record)
			}
			if msg, _ := record["error"].(string); !strings.HasPrefix(msg, "Action items do not match expected schema: ") {
				t.Errorf("error = %q", msg)
			}
			if record["raw_output"] != tt.reply {
				t.Errorf("raw_output = %v, want %v", record["raw_output"], tt.reply)
			}
			if got.Items != nil {
				t.Errorf("Items = %+v, want nil", got.Items)
			}
		})
	}
}

func TestActionItemsCodeFenceStripping(t *testing.T) {
	reply := "```json\n{\"individual_actions\":{},\"team_actions\":[\"retro\"],\"entities\":[]}\n```"
	s := NewWithChat(&fakeChat{actionItems: reply}, logger.NewNop(), WithCodeFenceStripping(true))

	got := s.ActionItems(context.Background(), "transcript")
	if !got.OK() {
		t.Fatalf("ActionItems() failure = %v", got.Failure)
	}
	if diff := cmp.Diff([]string{"retro"}, got.Items.TeamActions); diff != "" {
		t.Errorf("TeamActions mismatch (-want +got):\n%s", diff)
	}
}

func TestBackendFailure(t *testing.T) {
	boom := errors.New("connection refused")
	s := NewWithChat(&fakeChat{err: boom}, logger.NewNop())

	summary := s.Summary(context.Background(), "transcript")
	if summary.Text != "Error: Could not generate summary due to API issue: connection refused" {
		t.Errorf("Summary().Text = %q", summary.Text)
	}
	if summary.Failure == nil || summary.Failure.Kind != FailureBackend || !errors.Is(summary.Failure, boom) {
		t.Errorf("Summary().Failure = %+v", summary.Failure)
	}

	items := s.ActionItems(context.Background(), "transcript")
	want := map[string]any{"error": "API call failed: connection refused", "raw_output": ""}
	if diff := cmp.Diff(want, items.Record()); diff != "" {
		t.Errorf("Record() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeNeverFailsOnBackendErrors(t *testing.T) {
	chat := &fakeChat{err: &backend.StatusError{Provider: "openai", Code: http.StatusUnauthorized}}
	s := NewWithChat(chat, logger.NewNop())

	summary, items := s.Summarize(context.Background(), "Alice will email the client by Friday.")

	if !strings.HasPrefix(summary.Text, "Error: Could not generate summary") {
		t.Errorf("summary = %q", summary.Text)
	}
	if _, ok := items.Record()["error"]; !ok {
		t.Errorf("action items record %v has no error key", items.Record())
	}
	if len(chat.prompts) != 2 {
		t.Errorf("backend called %d times, want 2", len(chat.prompts))
	}
}

func TestUnsupportedModeDegradesToFailures(t *testing.T) {
	s := New(backend.Settings{Mode: "hybrid"}, logger.NewNop())

	summary, items := s.Summarize(context.Background(), "transcript")
	if summary.Failure == nil || summary.Failure.Kind != FailureConfiguration {
		t.Fatalf("summary failure = %+v", summary.Failure)
	}
	if !errors.Is(summary.Failure, backend.ErrUnsupportedMode) {
		t.Errorf("summary failure should wrap ErrUnsupportedMode")
	}
	if !strings.HasPrefix(summary.Text, "Error: Could not generate summary due to API issue: ") {
		t.Errorf("summary = %q", summary.Text)
	}

	record := items.Record()
	if msg, _ := record["error"].(string); !strings.HasPrefix(msg, "API call failed: ") {
		t.Errorf("error = %q", msg)
	}
	if record["raw_output"] != "" {
		t.Errorf("raw_output = %v, want empty", record["raw_output"])
	}
}

func TestSummaryTrimsAndUsesPrompts(t *testing.T) {
	chat := &fakeChat{summary: "\n  Team agreed to ship on Monday.  \n"}
	s := NewWithChat(chat, logger.NewNop(), WithActionItemPrompt("custom items"), WithSummaryPrompt(""))

	got := s.Summary(context.Background(), "transcript")
	if got.Text != "Team agreed to ship on Monday." {
		t.Errorf("Summary().Text = %q", got.Text)
	}
	s.ActionItems(context.Background(), "transcript")

	want := []string{defaultSummaryPrompt, "custom items"}
	if diff := cmp.Diff(want, chat.prompts); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractionScenario(t *testing.T) {
	transcript := "Alice will email the client by Friday. Bob will file the report."

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []backend.Message `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("invalid payload: %v", err)
			return
		}
		if payload.Messages[1].Content != transcript {
			t.Errorf("user turn = %q", payload.Messages[1].Content)
		}

		content := "Alice emails the client; Bob files the report."
		if strings.Contains(payload.Messages[0].Content, "strictly in\nvalid JSON") {
			content = `{"individual_actions": {"Alice": ["email the client by Friday"], "Bob": ["file the report"]}, "team_actions": [], "entities": ["Alice", "Bob"]}`
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"role": "assistant", "content": content},
		})
	}))
	defer ts.Close()

	s := New(backend.Settings{Mode: "local", LocalModel: "llama3", LocalBaseURL: ts.URL}, logger.NewNop())
	summary, items := s.Summarize(context.Background(), transcript)

	if !summary.OK() || summary.Text == "" {
		t.Fatalf("summary = %+v", summary)
	}
	if !items.OK() {
		t.Fatalf("action items failure = %v", items.Failure)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob"}, items.Items.Entities); diff != "" {
		t.Errorf("Entities mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"Alice", "Bob"} {
		if got := len(items.Items.IndividualActions[name]); got != 1 {
			t.Errorf("%s has %d tasks, want 1", name, got)
		}
	}
}

func TestActionItemResultJSON(t *testing.T) {
	r := actionItemFailure(FailureInvalidJSON, errors.New("bad"), "oops")
	got, err := r.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"error\": \"Invalid JSON returned from model\",\n  \"raw_output\": \"oops\"\n}"
	if got != want {
		t.Errorf("JSON() = %s, want %s", got, want)
	}
}
