package evaluation

// Verdict is the outcome of grading one case against one metric. Err is set
// when the grader could not produce a usable score; such verdicts fail.
type Verdict struct {
	Case   Case
	Metric *Metric
	Score  float64
	Reason string
	Passed bool
	Err    error
}

// Report holds the verdicts of one run in case-major, metric-minor order.
type Report struct {
	RunID    string
	Verdicts []Verdict
}

func (r *Report) Passed() bool {
	return len(r.Failures()) == 0
}

func (r *Report) Failures() []Verdict {
	var failed []Verdict
	for _, v := range r.Verdicts {
		if !v.Passed {
			failed = append(failed, v)
		}
	}
	return failed
}

// Err returns a *RunFailure when any verdict failed.
func (r *Report) Err() error {
	failed := r.Failures()
	if len(failed) == 0 {
		return nil
	}
	return &RunFailure{Failures: failed, Total: len(r.Verdicts)}
}
