package evaluation

import "context"

// Builder binds metrics to the grading backend of one execution mode.
type Builder interface {
	BuildMetric(spec MetricSpec) (*Metric, error)
}

// Evaluator grades every case against every metric.
type Evaluator interface {
	Evaluate(ctx context.Context, cases []Case, metrics []*Metric) (*Report, error)
}
