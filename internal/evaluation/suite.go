package evaluation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Target selects which produced output a suite metric grades.
type Target string

const (
	TargetSummary     Target = "summary"
	TargetActionItems Target = "action_items"
	TargetAnswer      Target = "answer"
)

// Targets lists every target in the order a suite is run.
var Targets = []Target{TargetSummary, TargetActionItems, TargetAnswer}

type SuiteMetric struct {
	MetricSpec `yaml:",inline"`
	Target     Target `yaml:"target" validate:"required,oneof=summary action_items answer"`
}

// Suite is a YAML evaluation plan. Relative file paths are resolved against
// the suite file's directory.
type Suite struct {
	Transcripts string        `yaml:"transcripts"`
	Goldens     string        `yaml:"goldens"`
	Metrics     []SuiteMetric `yaml:"metrics" validate:"required,min=1,dive"`
}

func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse suite file: %w", err)
	}
	if err := validator.New().Struct(s); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	s.Transcripts = resolvePath(dir, s.Transcripts)
	s.Goldens = resolvePath(dir, s.Goldens)
	return &s, nil
}

// BuildMetrics builds every suite metric and groups them by target,
// keeping file order within a target.
func (s *Suite) BuildMetrics(b Builder) (map[Target][]*Metric, error) {
	out := make(map[Target][]*Metric)
	for _, sm := range s.Metrics {
		m, err := b.BuildMetric(sm.MetricSpec)
		if err != nil {
			return nil, err
		}
		out[sm.Target] = append(out[sm.Target], m)
	}
	return out, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
