package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/wenhao/airecruit/internal/prompts"
	"github.com/wenhao/airecruit/internal/schemas"
)

// neutralScore is assigned when scoring is unavailable so one model
// outage does not zero a candidate's interview.
const neutralScore = 60

// AnswerEvaluation is the scored assessment of one interview answer.
type AnswerEvaluation struct {
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

// ScoreAnswer evaluates one answer against its question's dimension.
// It never fails: generation or validation errors degrade to a neutral
// evaluation.
func (iv *Interviewer) ScoreAnswer(ctx context.Context, question Question, answer string) *AnswerEvaluation {
	template, err := prompts.Get("interview.json", "score_answer")
	if err != nil {
		log.Printf("answer scoring unavailable: %v", err)
		return neutralEvaluation()
	}
	prompt := prompts.Format(template, map[string]string{
		"Question":  question.Text,
		"Dimension": string(question.Dimension),
		"Answer":    answer,
	})

	raw, err := iv.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		log.Printf("answer scoring failed: %v", err)
		return neutralEvaluation()
	}

	eval, err := ParseAnswerEvaluation([]byte(raw))
	if err != nil {
		log.Printf("answer scoring returned invalid output: %v", err)
		return neutralEvaluation()
	}
	return eval
}

// ParseAnswerEvaluation validates and decodes a generated evaluation.
func ParseAnswerEvaluation(data []byte) (*AnswerEvaluation, error) {
	if err := schemas.ValidateAnswerEvaluation(data); err != nil {
		return nil, err
	}
	var eval AnswerEvaluation
	if err := json.Unmarshal(data, &eval); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation: %w", err)
	}
	return &eval, nil
}

func neutralEvaluation() *AnswerEvaluation {
	return &AnswerEvaluation{
		Score:    neutralScore,
		Feedback: "Automatic scoring was unavailable for this answer; a neutral score was assigned.",
	}
}
