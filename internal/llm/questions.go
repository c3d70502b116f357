package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/wenhao/airecruit/internal/prompts"
	"github.com/wenhao/airecruit/internal/recruit"
	"github.com/wenhao/airecruit/internal/schemas"
)

// DefaultQuestionCount is how many questions a generated interview has.
const DefaultQuestionCount = 10

// Question is one interview question tagged with the dimension it
// evaluates. FollowUp is the probe the interviewer falls back on when
// the first answer stays vague.
type Question struct {
	Text      string            `json:"question"`
	Dimension recruit.Dimension `json:"dimension"`
	FollowUp  string            `json:"follow_up"`
}

// QuestionSet is a full generated interview plus a strategy note telling
// the interviewer how to run the set.
type QuestionSet struct {
	Questions         []Question `json:"questions"`
	InterviewStrategy string     `json:"interview_strategy"`
}

// JobContext carries the position fields the generator prompts with.
type JobContext struct {
	Position     string
	Requirements string
	Description  string
}

// Interviewer generates question sets and scores answers. A failed or
// malformed generation degrades to the built-in fallback set rather than
// failing the interview.
type Interviewer struct {
	client Client
}

// NewInterviewer wraps a client.
func NewInterviewer(client Client) *Interviewer {
	return &Interviewer{client: client}
}

// GenerateQuestions produces a question set for a position.
func (iv *Interviewer) GenerateQuestions(ctx context.Context, job JobContext) (*QuestionSet, error) {
	template, err := prompts.Get("interview.json", "question_set")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Position":     job.Position,
		"Requirements": job.Requirements,
		"Description":  job.Description,
		"Definitions":  dimensionDefinitions(),
		"Count":        fmt.Sprintf("%d", DefaultQuestionCount),
	})
	return iv.generate(ctx, prompt)
}

// RegenerateQuestions produces a revised set from hiring-manager
// feedback on a previous one.
func (iv *Interviewer) RegenerateQuestions(ctx context.Context, job JobContext, previous *QuestionSet, feedback string) (*QuestionSet, error) {
	template, err := prompts.Get("interview.json", "question_set_feedback")
	if err != nil {
		return nil, err
	}
	prevJSON, _ := json.Marshal(previous)
	prompt := prompts.Format(template, map[string]string{
		"Position":     job.Position,
		"Requirements": job.Requirements,
		"Previous":     string(prevJSON),
		"Feedback":     feedback,
		"Definitions":  dimensionDefinitions(),
		"Count":        fmt.Sprintf("%d", DefaultQuestionCount),
	})
	return iv.generate(ctx, prompt)
}

func (iv *Interviewer) generate(ctx context.Context, prompt string) (*QuestionSet, error) {
	raw, err := iv.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		log.Printf("question generation failed, using fallback set: %v", err)
		return FallbackQuestions(), nil
	}

	set, err := ParseQuestionSet([]byte(raw))
	if err != nil {
		log.Printf("question generation returned invalid output, using fallback set: %v", err)
		return FallbackQuestions(), nil
	}
	return set, nil
}

// ParseQuestionSet validates and decodes a generated question set.
func ParseQuestionSet(data []byte) (*QuestionSet, error) {
	if err := schemas.ValidateQuestionSet(data); err != nil {
		return nil, err
	}
	var set QuestionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse question set: %w", err)
	}
	for _, q := range set.Questions {
		if !recruit.IsValidDimension(q.Dimension) {
			return nil, fmt.Errorf("unknown dimension %q", q.Dimension)
		}
	}
	return &set, nil
}

// dimensionDefinitions renders the six dimensions for prompt text.
func dimensionDefinitions() string {
	var sb strings.Builder
	for _, dim := range recruit.Dimensions {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", dim, recruit.DimensionDefinitions[dim]))
	}
	return sb.String()
}

// FallbackQuestions is the static set used when generation is
// unavailable, covering every dimension at least once.
func FallbackQuestions() *QuestionSet {
	return &QuestionSet{
		InterviewStrategy: "Open with background questions to settle the candidate, then alternate technical and behavioral questions. Use the follow-up whenever an answer stays abstract, and keep each question under three minutes.",
		Questions: []Question{
			{Text: "Walk me through your educational background and the technical fundamentals you rely on most.", Dimension: recruit.DimensionKnowledge, FollowUp: "Which of those fundamentals did you use in your most recent project?"},
			{Text: "Which frameworks or tools from the job requirements have you used in production, and how?", Dimension: recruit.DimensionKnowledge, FollowUp: "Pick one and describe a problem it caused you in production."},
			{Text: "Describe the most complex feature you personally implemented. What was your exact contribution?", Dimension: recruit.DimensionSkill, FollowUp: "What would you build differently if you started it again today?"},
			{Text: "How do you debug a problem you have never seen before? Give a concrete example.", Dimension: recruit.DimensionSkill, FollowUp: "What was the actual root cause in that example?"},
			{Text: "Tell me about a project that failed or slipped badly. What did you change afterwards?", Dimension: recruit.DimensionAbility, FollowUp: "What early signal did you miss, in hindsight?"},
			{Text: "Describe a time you had to learn a new technology under deadline pressure.", Dimension: recruit.DimensionAbility, FollowUp: "How did you decide what to skip learning?"},
			{Text: "How would your previous teammates describe working with you?", Dimension: recruit.DimensionPersonality, FollowUp: "What criticism of yours from a teammate stuck with you?"},
			{Text: "What attracted you to this position, and where do you want to be in three years?", Dimension: recruit.DimensionMotivation, FollowUp: "What would make you leave this role within the first year?"},
			{Text: "What does good engineering culture mean to you?", Dimension: recruit.DimensionValue, FollowUp: "Describe a culture you worked in that fell short of that."},
			{Text: "When team priorities conflict with your own technical judgment, how do you handle it?", Dimension: recruit.DimensionValue, FollowUp: "Tell me about a time you were overruled and turned out to be right."},
		},
	}
}
