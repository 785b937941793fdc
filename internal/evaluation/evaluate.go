package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
)

// Evaluate grades every (case, metric) pair sequentially. Cases missing a
// field a metric requires are rejected before any grading call.
func (e *implEvaluator) Evaluate(ctx context.Context, cases []Case, metrics []*Metric) (*Report, error) {
	if err := checkRequired(cases, metrics); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:    uuid.New().String(),
		Verdicts: make([]Verdict, 0, len(cases)*len(metrics)),
	}
	e.logger.Info(ctx, "Evaluation run %s: %d cases x %d metrics", report.RunID, len(cases), len(metrics))

	for _, c := range cases {
		for _, m := range metrics {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v := e.grade(ctx, c, m)
			report.Verdicts = append(report.Verdicts, v)
		}
	}

	e.logger.Info(ctx, "Evaluation run %s finished: %d/%d passed",
		report.RunID, len(report.Verdicts)-len(report.Failures()), len(report.Verdicts))
	return report, nil
}

func (e *implEvaluator) grade(ctx context.Context, c Case, m *Metric) Verdict {
	v := Verdict{Case: c, Metric: m}

	res, err := m.grader.Grade(ctx, gradeRequest(c, m))
	if err != nil {
		e.logger.Warn(ctx, "Grading %s/%s failed: %v", c.Label(), m.name, err)
		v.Err = err
		return v
	}
	if res.Score < 0 || res.Score > 1 {
		v.Err = fmt.Errorf("%w: %v", ErrScoreOutOfRange, res.Score)
		return v
	}

	v.Score = res.Score
	v.Reason = res.Reason
	v.Passed = m.Passes(res.Score)
	e.logger.Debug(ctx, "%s/%s: score=%.2f threshold=%.2f passed=%t",
		c.Label(), m.name, v.Score, m.threshold, v.Passed)
	return v
}

// gradeRequest carries only the fields the metric declares.
func gradeRequest(c Case, m *Metric) backend.GradeRequest {
	fields := make([]backend.Field, 0, len(m.params))
	for _, p := range m.params {
		fields = append(fields, backend.Field{Name: p.Label(), Value: c.value(p)})
	}
	return backend.GradeRequest{
		Metric:   m.name,
		Criteria: m.criteria,
		Fields:   fields,
	}
}

func checkRequired(cases []Case, metrics []*Metric) error {
	for _, m := range metrics {
		if !m.requires(ParamExpectedOutput) {
			continue
		}
		for _, c := range cases {
			if c.ExpectedOutput == "" {
				return &MissingParamError{Case: c.Label(), Metric: m.name, Param: ParamExpectedOutput}
			}
		}
	}
	return nil
}
