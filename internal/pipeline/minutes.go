package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
)

// minutes is everything written for one transcript.
type minutes struct {
	Title       string
	GeneratedAt time.Time
	Summary     summarizer.SummaryResult
	ActionItems summarizer.ActionItemResult
}

func (m minutes) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", m.Title, m.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "## Summary\n\n%s\n\n", m.Summary.Text)
	b.WriteString("## Action Items\n\n")

	if !m.ActionItems.OK() {
		fmt.Fprintf(&b, "> %s\n", m.ActionItems.Failure.Error())
		if raw := m.ActionItems.Failure.RawOutput; raw != "" {
			fmt.Fprintf(&b, "\n```\n%s\n```\n", raw)
		}
		return b.String()
	}

	items := m.ActionItems.Items
	for _, person := range people(items) {
		fmt.Fprintf(&b, "### %s\n\n", person)
		writeList(&b, items.IndividualActions[person])
	}
	if len(items.TeamActions) > 0 {
		b.WriteString("### Team\n\n")
		writeList(&b, items.TeamActions)
	}
	if len(items.Entities) > 0 {
		fmt.Fprintf(&b, "**Participants:** %s\n", strings.Join(items.Entities, ", "))
	}
	return b.String()
}

// people returns the owners of individual actions in name order.
func people(items *summarizer.ActionItems) []string {
	names := make([]string, 0, len(items.IndividualActions))
	for name := range items.IndividualActions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeList(b *strings.Builder, tasks []string) {
	for _, task := range tasks {
		fmt.Fprintf(b, "- %s\n", task)
	}
	b.WriteString("\n")
}
