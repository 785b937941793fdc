package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const judgeSystemPrompt = `You are a strict evaluator of language model output. You will be given evaluation criteria and the parts of a test case you are allowed to look at.

Score how well the test case satisfies the criteria on an integer scale from 0 (not at all) to 10 (fully).

Respond strictly in valid JSON with exactly these keys and no other text:
{"score": <integer 0-10>, "reason": "<one or two sentences explaining the score>"}`

const judgeScale = 10.0

// Judge grades cases by asking a chat model to score them against criteria.
type Judge struct {
	chat ChatSender
}

func NewJudge(chat ChatSender) *Judge {
	return &Judge{chat: chat}
}

func (j *Judge) Model() string { return j.chat.Model() }

func (j *Judge) Grade(ctx context.Context, req GradeRequest) (GradeResult, error) {
	reply, err := j.chat.SendChat(ctx, judgeSystemPrompt, buildJudgePrompt(req))
	if err != nil {
		return GradeResult{}, fmt.Errorf("grade %s: %w", req.Metric, err)
	}
	return parseJudgement(reply)
}

func buildJudgePrompt(req GradeRequest) string {
	var b strings.Builder
	if req.Metric != "" {
		fmt.Fprintf(&b, "Metric: %s\n\n", req.Metric)
	}
	fmt.Fprintf(&b, "Evaluation criteria:\n%s\n", strings.TrimSpace(req.Criteria))
	for _, f := range req.Fields {
		fmt.Fprintf(&b, "\n%s:\n%s\n", f.Name, f.Value)
	}
	return b.String()
}

type judgement struct {
	Score  *float64 `json:"score"`
	Reason string   `json:"reason"`
}

func parseJudgement(reply string) (GradeResult, error) {
	content := ExtractJSON(reply)
	// tolerate prose around the object
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start >= 0 && end > start {
		content = content[start : end+1]
	}

	var j judgement
	if err := json.Unmarshal([]byte(content), &j); err != nil {
		return GradeResult{}, fmt.Errorf("%w: %v", ErrInvalidJudgement, err)
	}
	if j.Score == nil {
		return GradeResult{}, fmt.Errorf("%w: missing score", ErrInvalidJudgement)
	}
	if *j.Score < 0 || *j.Score > judgeScale {
		return GradeResult{}, fmt.Errorf("%w: score %v outside 0-%v", ErrInvalidJudgement, *j.Score, judgeScale)
	}

	return GradeResult{
		Score:  *j.Score / judgeScale,
		Reason: strings.TrimSpace(j.Reason),
	}, nil
}
