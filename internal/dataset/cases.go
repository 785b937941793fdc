package dataset

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-minutes/internal/evaluation"
	"github.com/nguyentantai21042004/meeting-minutes/internal/summarizer"
)

// Cases groups evaluation cases by the output they grade.
type Cases map[evaluation.Target][]evaluation.Case

// BuildCases turns goldens into evaluation cases. Goldens with a recorded
// answer become answer cases; the rest are summarized, one transcript at a
// time, into a summary case and an action-item case.
func BuildCases(ctx context.Context, goldens []Golden, s summarizer.Summarizer) (Cases, error) {
	cases := make(Cases)
	for _, g := range goldens {
		if g.ActualOutput != "" {
			cases[evaluation.TargetAnswer] = append(cases[evaluation.TargetAnswer],
				evaluation.NewCase(g.Name, g.Input, g.ActualOutput, g.ExpectedOutput))
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		summary, items := s.Summarize(ctx, g.Input)

		itemsJSON, err := items.JSON()
		if err != nil {
			return nil, fmt.Errorf("golden %s: %w", g.Name, err)
		}

		cases[evaluation.TargetSummary] = append(cases[evaluation.TargetSummary],
			evaluation.NewCase(g.Name, g.Input, summary.Text, g.ExpectedOutput))
		cases[evaluation.TargetActionItems] = append(cases[evaluation.TargetActionItems],
			evaluation.NewCase(g.Name, g.Input, itemsJSON, g.ExpectedActionItems))
	}
	return cases, nil
}
