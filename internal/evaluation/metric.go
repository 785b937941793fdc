package evaluation

import "github.com/nguyentantai21042004/meeting-minutes/internal/backend"

const DefaultThreshold = 0.5

// MetricSpec is the construction request for a Metric. A nil Threshold
// means DefaultThreshold.
type MetricSpec struct {
	Name      string   `yaml:"name" validate:"required"`
	Criteria  string   `yaml:"criteria" validate:"required"`
	Params    []Param  `yaml:"params" validate:"required,min=1,max=3,unique,dive,oneof=input actual_output expected_output"`
	Threshold *float64 `yaml:"threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Metric is a criteria-graded check bound to a grading backend. It is
// immutable once built.
type Metric struct {
	name      string
	criteria  string
	params    []Param
	threshold float64
	grader    backend.Grader
}

func (m *Metric) Name() string           { return m.name }
func (m *Metric) Criteria() string       { return m.criteria }
func (m *Metric) Threshold() float64     { return m.threshold }
func (m *Metric) Grader() backend.Grader { return m.grader }

// Params returns a copy of the declared fields in declaration order.
func (m *Metric) Params() []Param {
	return append([]Param(nil), m.params...)
}

func (m *Metric) requires(p Param) bool {
	for _, declared := range m.params {
		if declared == p {
			return true
		}
	}
	return false
}

// Passes reports whether score meets the threshold. Equality passes.
func (m *Metric) Passes(score float64) bool {
	return score >= m.threshold
}

// Threshold returns a pointer suitable for MetricSpec.Threshold.
func Threshold(v float64) *float64 {
	return &v
}
