package summarizer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
)

// Summary asks the backend for a free-text summary of transcript.
func (s *implSummarizer) Summary(ctx context.Context, transcript string) SummaryResult {
	if s.resolveErr != nil {
		s.logger.Error(ctx, "Error generating summary: %v", s.resolveErr)
		return summaryFailure(FailureConfiguration, s.resolveErr)
	}

	raw, err := s.chat.SendChat(ctx, s.summaryPrompt, transcript)
	if err != nil {
		s.logger.Error(ctx, "Error generating summary: %v", err)
		return summaryFailure(FailureBackend, err)
	}

	return SummaryResult{Text: strings.TrimSpace(raw)}
}

// ActionItems asks the backend for a JSON action-item record and validates
// its shape before returning it.
func (s *implSummarizer) ActionItems(ctx context.Context, transcript string) ActionItemResult {
	if s.resolveErr != nil {
		s.logger.Error(ctx, "Error generating action items: %v", s.resolveErr)
		return actionItemFailure(FailureConfiguration, s.resolveErr, "")
	}

	raw, err := s.chat.SendChat(ctx, s.actionItemPrompt, transcript)
	if err != nil {
		s.logger.Error(ctx, "Error generating action items: %v", err)
		return actionItemFailure(FailureBackend, err, "")
	}
	raw = strings.TrimSpace(raw)

	content := raw
	if s.stripFences {
		content = backend.ExtractJSON(content)
	}

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		s.logger.Warn(ctx, "Action items reply is not valid JSON: %v", err)
		return actionItemFailure(FailureInvalidJSON, err, raw)
	}

	if err := actionItemSchema.Validate(parsed); err != nil {
		s.logger.Warn(ctx, "Action items reply does not match schema: %v", err)
		return actionItemFailure(FailureSchema, err, raw)
	}

	var items ActionItems
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return actionItemFailure(FailureSchema, err, raw)
	}

	return ActionItemResult{
		Items:  &items,
		record: parsed.(map[string]any),
	}
}

// Summarize runs both calls. A failure in one does not affect the other.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (SummaryResult, ActionItemResult) {
	summary := s.Summary(ctx, transcript)
	actionItems := s.ActionItems(ctx, transcript)
	return summary, actionItems
}
