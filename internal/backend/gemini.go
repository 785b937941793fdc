package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini sends chats through the Gemini API. A client is created per call so
// that resolving the backend never touches the network.
type Gemini struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewGemini(apiKey string, model string, timeout time.Duration) *Gemini {
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{apiKey: apiKey, model: model, timeout: timeout}
}

func (g *Gemini) Name() string  { return "gemini" }
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) SendChat(ctx context.Context, systemPrompt, userText string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: %w", ErrMissingCredential)
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
	}
	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(userText), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
