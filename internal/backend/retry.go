package backend

import (
	"context"
	"errors"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// retrySender re-sends a chat on transient failures. Only wired in when
// MaxAttempts is greater than one.
type retrySender struct {
	ChatSender
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

func withRetry(s ChatSender, maxAttempts int) ChatSender {
	if maxAttempts <= 1 {
		return s
	}
	return &retrySender{
		ChatSender:  s,
		maxAttempts: maxAttempts,
		newBackOff:  defaultBackOff,
	}
}

func defaultBackOff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = time.Minute
	return bo
}

func (r *retrySender) SendChat(ctx context.Context, systemPrompt, userText string) (string, error) {
	var reply string
	op := func() error {
		out, err := r.ChatSender.SendChat(ctx, systemPrompt, userText)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		reply = out
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return "", err
	}
	return reply, nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrMissingCredential) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusRequestTimeout ||
			se.Code == http.StatusTooManyRequests ||
			se.Code >= 500
	}
	return true
}
