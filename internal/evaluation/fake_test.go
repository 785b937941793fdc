package evaluation

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
)

// fakeGrader scores by metric name and records every request it receives.
type fakeGrader struct {
	scores   map[string]float64
	errs     map[string]error
	requests []backend.GradeRequest
}

func (f *fakeGrader) Model() string { return "fake-judge" }

func (f *fakeGrader) Grade(_ context.Context, req backend.GradeRequest) (backend.GradeResult, error) {
	f.requests = append(f.requests, req)
	if err := f.errs[req.Metric]; err != nil {
		return backend.GradeResult{}, err
	}
	return backend.GradeResult{Score: f.scores[req.Metric], Reason: "fake"}, nil
}
