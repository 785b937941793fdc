package backend

import "strings"

// Backend is the capability set bound for one execution mode.
type Backend struct {
	Mode   Mode
	Chat   ChatSender
	Grader Grader
}

// Resolve selects the chat and grading backends for s.Mode. No network call
// is made; a missing credential only surfaces when a call is sent.
func Resolve(s Settings) (*Backend, error) {
	mode, err := ParseMode(s.Mode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeLocal:
		chat := withRetry(NewOllama(s.LocalBaseURL, s.LocalModel, s.Timeout), s.MaxAttempts)
		return &Backend{
			Mode:   mode,
			Chat:   chat,
			Grader: NewJudge(chat),
		}, nil

	default:
		chat, judge, err := remoteSenders(s)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Mode:   mode,
			Chat:   withRetry(chat, s.MaxAttempts),
			Grader: NewJudge(withRetry(judge, s.MaxAttempts)),
		}, nil
	}
}

func remoteSenders(s Settings) (ChatSender, ChatSender, error) {
	provider := strings.ToLower(strings.TrimSpace(s.RemoteProvider))
	switch provider {
	case "", ProviderOpenAI:
		return NewOpenAI(s.RemoteCredential, s.RemoteBaseURL, s.RemoteModel, s.Timeout),
			NewOpenAI(s.RemoteCredential, s.RemoteBaseURL, judgeModel(s, defaultOpenAIJudgeModel), s.Timeout),
			nil
	case ProviderGemini:
		return NewGemini(s.RemoteCredential, s.RemoteModel, s.Timeout),
			NewGemini(s.RemoteCredential, judgeModel(s, defaultGeminiModel), s.Timeout),
			nil
	default:
		return nil, nil, &ConfigError{Value: s.RemoteProvider, Err: ErrUnsupportedProvider}
	}
}

func judgeModel(s Settings, fallback string) string {
	if s.JudgeModel != "" {
		return s.JudgeModel
	}
	return fallback
}
