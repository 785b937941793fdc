package summarizer

import (
	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type implSummarizer struct {
	chat             backend.ChatSender
	resolveErr       error
	logger           logger.Logger
	summaryPrompt    string
	actionItemPrompt string
	stripFences      bool
}

type Option func(*implSummarizer)

// WithSummaryPrompt replaces the summary system instruction. Empty keeps the default.
func WithSummaryPrompt(prompt string) Option {
	return func(s *implSummarizer) {
		if prompt != "" {
			s.summaryPrompt = prompt
		}
	}
}

// WithActionItemPrompt replaces the action-item system instruction. Empty keeps the default.
func WithActionItemPrompt(prompt string) Option {
	return func(s *implSummarizer) {
		if prompt != "" {
			s.actionItemPrompt = prompt
		}
	}
}

// WithCodeFenceStripping unwraps ```json fenced replies before parsing.
func WithCodeFenceStripping(enabled bool) Option {
	return func(s *implSummarizer) {
		s.stripFences = enabled
	}
}

// New resolves the chat backend for settings once. An unsupported mode does
// not fail construction; every call then reports a configuration failure.
func New(settings backend.Settings, log logger.Logger, opts ...Option) Summarizer {
	b, err := backend.Resolve(settings)
	if err != nil {
		return newImpl(nil, err, log, opts)
	}
	return newImpl(b.Chat, nil, log, opts)
}

// NewWithChat builds a Summarizer around an already resolved chat backend.
func NewWithChat(chat backend.ChatSender, log logger.Logger, opts ...Option) Summarizer {
	return newImpl(chat, nil, log, opts)
}

func newImpl(chat backend.ChatSender, resolveErr error, log logger.Logger, opts []Option) *implSummarizer {
	s := &implSummarizer{
		chat:             chat,
		resolveErr:       resolveErr,
		logger:           log,
		summaryPrompt:    defaultSummaryPrompt,
		actionItemPrompt: defaultActionItemPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
