package evaluation

import (
	"github.com/go-playground/validator/v10"

	"github.com/nguyentantai21042004/meeting-minutes/internal/backend"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type implBuilder struct {
	grader     backend.Grader
	resolveErr error
	validate   *validator.Validate
	logger     logger.Logger
}

// NewBuilder resolves the grading backend for settings once. An unsupported
// mode is reported by every BuildMetric call.
func NewBuilder(settings backend.Settings, log logger.Logger) Builder {
	b, err := backend.Resolve(settings)
	if err != nil {
		return &implBuilder{resolveErr: err, validate: validator.New(), logger: log}
	}
	return NewBuilderWithGrader(b.Grader, log)
}

// NewBuilderWithGrader binds metrics to an already resolved grader.
func NewBuilderWithGrader(grader backend.Grader, log logger.Logger) Builder {
	return &implBuilder{
		grader:   grader,
		validate: validator.New(),
		logger:   log,
	}
}

type implEvaluator struct {
	logger logger.Logger
}

func NewEvaluator(log logger.Logger) Evaluator {
	return &implEvaluator{logger: log}
}
