package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOllamaSendChat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/api/chat" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Model != "llama3" {
			t.Errorf("model = %s, want llama3", payload.Model)
		}
		if payload.Stream {
			t.Error("stream should be false")
		}
		if len(payload.Messages) != 2 || payload.Messages[0].Role != "system" || payload.Messages[1].Content != "transcript" {
			t.Errorf("unexpected messages %+v", payload.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"role": "assistant", "content": "  the summary \n"},
			"done":    true,
		})
	}))
	defer ts.Close()

	o := NewOllama(ts.URL+"/", "", time.Second)
	got, err := o.SendChat(context.Background(), "instructions", "transcript")
	if err != nil {
		t.Fatalf("SendChat() error = %v", err)
	}
	if got != "  the summary \n" {
		t.Errorf("SendChat() = %q", got)
	}
}

func TestOllamaSendChatStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := NewOllama(ts.URL, "missing", time.Second).SendChat(context.Background(), "s", "u")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("SendChat() error = %v, want *StatusError", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want %d", se.Code, http.StatusNotFound)
	}
	if se.Body != "model not found" {
		t.Errorf("Body = %q", se.Body)
	}
}
