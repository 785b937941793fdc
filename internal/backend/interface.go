package backend

import "context"

// ChatSender sends a single system + user exchange to a chat model and
// returns the raw assistant text.
type ChatSender interface {
	SendChat(ctx context.Context, systemPrompt, userText string) (string, error)
	Name() string
	Model() string
}

// Grader scores one evaluation case against a natural-language criteria.
type Grader interface {
	Grade(ctx context.Context, req GradeRequest) (GradeResult, error)
	Model() string
}

// Message is one chat turn as sent over the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Field is a named piece of a case the grader is allowed to read.
type Field struct {
	Name  string
	Value string
}

type GradeRequest struct {
	Metric   string
	Criteria string
	Fields   []Field
}

// GradeResult holds a score in [0, 1] and the judge's rationale, if any.
type GradeResult struct {
	Score  float64
	Reason string
}
