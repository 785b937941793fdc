package evaluation

import "github.com/google/uuid"

// Case is one graded example. Cases are values and are never mutated.
type Case struct {
	ID             string
	Name           string
	Input          string
	ActualOutput   string
	ExpectedOutput string
}

func NewCase(name, input, actualOutput, expectedOutput string) Case {
	return Case{
		ID:             uuid.New().String(),
		Name:           name,
		Input:          input,
		ActualOutput:   actualOutput,
		ExpectedOutput: expectedOutput,
	}
}

// Label prefers the case name and falls back to its ID.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

func (c Case) value(p Param) string {
	switch p {
	case ParamInput:
		return c.Input
	case ParamActualOutput:
		return c.ActualOutput
	case ParamExpectedOutput:
		return c.ExpectedOutput
	default:
		return ""
	}
}
