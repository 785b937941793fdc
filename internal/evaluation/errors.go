package evaluation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMetric   = errors.New("invalid metric")
	ErrMissingParam    = errors.New("missing required case field")
	ErrScoreOutOfRange = errors.New("score out of range")
)

// MissingParamError names the case and metric that cannot be graded.
type MissingParamError struct {
	Case   string
	Metric string
	Param  Param
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("case %q has no %s required by metric %q", e.Case, e.Param.Label(), e.Metric)
}

func (e *MissingParamError) Unwrap() error {
	return ErrMissingParam
}

// RunFailure reports every failing verdict of a run.
type RunFailure struct {
	Failures []Verdict
	Total    int
}

func (e *RunFailure) Error() string {
	msg := fmt.Sprintf("evaluation failed: %d of %d verdicts failed", len(e.Failures), e.Total)
	for _, v := range e.Failures {
		msg += fmt.Sprintf("; %s/%s", v.Case.Label(), v.Metric.Name())
	}
	return msg
}
