package summarizer

import "context"

// Summarizer turns a meeting transcript into a summary and an action-item record.
// None of its methods return an error: failures are carried in the results.
type Summarizer interface {
	Summary(ctx context.Context, transcript string) SummaryResult
	ActionItems(ctx context.Context, transcript string) ActionItemResult
	Summarize(ctx context.Context, transcript string) (SummaryResult, ActionItemResult)
}
