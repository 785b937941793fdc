package evaluation

import "fmt"

// BuildMetric validates spec and binds it to the builder's grader.
func (b *implBuilder) BuildMetric(spec MetricSpec) (*Metric, error) {
	if b.resolveErr != nil {
		return nil, b.resolveErr
	}
	if err := b.validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidMetric, spec.Name, err)
	}

	threshold := DefaultThreshold
	if spec.Threshold != nil {
		threshold = *spec.Threshold
	}

	return &Metric{
		name:      spec.Name,
		criteria:  spec.Criteria,
		params:    append([]Param(nil), spec.Params...),
		threshold: threshold,
		grader:    b.grader,
	}, nil
}
