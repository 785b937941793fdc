package evaluation

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("243"))

	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

const (
	caseWidth   = 28
	metricWidth = 28
	numberWidth = 10
)

// Render writes a verdict table followed by a one-line total.
func Render(w io.Writer, r *Report) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Evaluation run " + r.RunID))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(row("CASE", "METRIC", "SCORE", "THRESHOLD", "RESULT")))
	b.WriteString("\n")

	for _, v := range r.Verdicts {
		result := passStyle.Render("PASS")
		if !v.Passed {
			result = failStyle.Render("FAIL")
		}
		b.WriteString(row(
			v.Case.Label(),
			v.Metric.Name(),
			fmt.Sprintf("%.2f", v.Score),
			fmt.Sprintf("%.2f", v.Metric.Threshold()),
			result,
		))
		b.WriteString("\n")

		switch {
		case v.Err != nil:
			b.WriteString(dimStyle.Render("  error: " + v.Err.Error()))
			b.WriteString("\n")
		case v.Reason != "":
			b.WriteString(dimStyle.Render("  " + v.Reason))
			b.WriteString("\n")
		}
	}

	failed := len(r.Failures())
	summary := fmt.Sprintf("\n%d passed, %d failed", len(r.Verdicts)-failed, failed)
	if failed > 0 {
		b.WriteString(failStyle.Render(summary))
	} else {
		b.WriteString(passStyle.Render(summary))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func row(caseName, metric, score, threshold, result string) string {
	return cell(caseName, caseWidth) + cell(metric, metricWidth) +
		cell(score, numberWidth) + cell(threshold, numberWidth) + result
}

func cell(s string, width int) string {
	if r := []rune(s); len(r) > width-2 {
		s = string(r[:width-3]) + "…"
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
