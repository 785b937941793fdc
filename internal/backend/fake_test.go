package backend

import "context"

type fakeChat struct {
	replies    []string
	errs       []error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeChat) Name() string  { return "fake" }
func (f *fakeChat) Model() string { return "fake-model" }

func (f *fakeChat) SendChat(_ context.Context, systemPrompt, userText string) (string, error) {
	i := f.calls
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userText
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	if len(f.replies) > 0 {
		return f.replies[len(f.replies)-1], nil
	}
	return "", nil
}
