package evaluation

// Param names a case field a metric may show to its grader.
type Param string

const (
	ParamInput          Param = "input"
	ParamActualOutput   Param = "actual_output"
	ParamExpectedOutput Param = "expected_output"
)

// Label is the heading the grader sees for the field.
func (p Param) Label() string {
	switch p {
	case ParamInput:
		return "Input"
	case ParamActualOutput:
		return "Actual Output"
	case ParamExpectedOutput:
		return "Expected Output"
	default:
		return string(p)
	}
}
