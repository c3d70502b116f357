// Package recruit implements the candidate reconciliation and scoring
// pipeline: normalization defaults, the status/score resolver, the
// relational-override merger, and the dashboard aggregator.
package recruit

import "time"

// NotProvided is the placeholder substituted for absent or unparsable
// string cells so downstream consumers never handle missing strings.
const NotProvided = "not provided"

// Status describes where a candidate is in the interview funnel.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Source records which data source determined a candidate's displayed
// status and score.
type Source string

const (
	SourceSpreadsheet        Source = "spreadsheet"
	SourceRelationalOverride Source = "relational-override"
)

// Dimension is one of the six competency ratings scored 0-100.
type Dimension string

const (
	DimensionKnowledge   Dimension = "knowledge"
	DimensionSkill       Dimension = "skill"
	DimensionAbility     Dimension = "ability"
	DimensionPersonality Dimension = "personality"
	DimensionMotivation  Dimension = "motivation"
	DimensionValue       Dimension = "value"
)

// Dimensions lists the six dimensions in their canonical order.
var Dimensions = []Dimension{
	DimensionKnowledge,
	DimensionSkill,
	DimensionAbility,
	DimensionPersonality,
	DimensionMotivation,
	DimensionValue,
}

// DimensionDefinitions describes what each dimension evaluates. The
// definitions are handed to the LLM collaborator alongside candidate fields.
var DimensionDefinitions = map[Dimension]string{
	DimensionKnowledge:   "professional knowledge: education, technical qualifications, theoretical grounding",
	DimensionSkill:       "professional skill: concrete, hands-on operational ability",
	DimensionAbility:     "general competence: abstract problem solving and work experience",
	DimensionPersonality: "personality traits: self-positioning and character",
	DimensionMotivation:  "motivation: reasons for applying and career goals",
	DimensionValue:       "values: personal values and cultural fit",
}

// IsValidDimension reports whether d is one of the six known dimensions.
func IsValidDimension(d Dimension) bool {
	_, ok := DimensionDefinitions[d]
	return ok
}

// DimensionScores holds the six optional competency ratings. A nil field
// means the dimension was never scored; a stored 0 is treated as "no
// signal" by the dashboard averages but still counts as present for the
// resolver.
type DimensionScores struct {
	Knowledge   *float64 `json:"knowledge,omitempty"`
	Skill       *float64 `json:"skill,omitempty"`
	Ability     *float64 `json:"ability,omitempty"`
	Personality *float64 `json:"personality,omitempty"`
	Motivation  *float64 `json:"motivation,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// Get returns the score for a dimension, or nil when unscored.
func (d DimensionScores) Get(dim Dimension) *float64 {
	switch dim {
	case DimensionKnowledge:
		return d.Knowledge
	case DimensionSkill:
		return d.Skill
	case DimensionAbility:
		return d.Ability
	case DimensionPersonality:
		return d.Personality
	case DimensionMotivation:
		return d.Motivation
	case DimensionValue:
		return d.Value
	default:
		return nil
	}
}

// Set assigns the score for a dimension.
func (d *DimensionScores) Set(dim Dimension, score float64) {
	v := score
	switch dim {
	case DimensionKnowledge:
		d.Knowledge = &v
	case DimensionSkill:
		d.Skill = &v
	case DimensionAbility:
		d.Ability = &v
	case DimensionPersonality:
		d.Personality = &v
	case DimensionMotivation:
		d.Motivation = &v
	case DimensionValue:
		d.Value = &v
	}
}

// Present returns the scores that are set, in canonical dimension order.
func (d DimensionScores) Present() []float64 {
	var scores []float64
	for _, dim := range Dimensions {
		if s := d.Get(dim); s != nil {
			scores = append(scores, *s)
		}
	}
	return scores
}

// CandidateRecord is one applicant's reconciled view. Identity and raw
// signals come from the normalizer; Status, TotalScore, Source and
// AnswerCount are derived by the resolver and merger.
type CandidateRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	JobID    *int64 `json:"job_id,omitempty"`

	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	ExpectedSalary string `json:"expected_salary"`

	Dimensions DimensionScores `json:"dimensions"`

	// Raw resolver signals from the spreadsheet.
	ExplicitTotal *float64 `json:"explicit_total,omitempty"`
	Interviewed   bool     `json:"interviewed"`

	CreatedAt time.Time `json:"created_at"`

	// Derived fields. Never supplied directly by the normalizer.
	Status      Status   `json:"status"`
	TotalScore  *float64 `json:"total_score,omitempty"`
	Source      Source   `json:"source"`
	AnswerCount int      `json:"answer_count"`
}

// JobStatus describes whether a position is accepting applications.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// JobRecord is one open position normalized from the jobs spreadsheet.
type JobRecord struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	SalaryRange    string    `json:"salary_range"`
	Requirements   string    `json:"requirements"`
	Description    string    `json:"description"`
	Status         JobStatus `json:"status"`
	RecruitCount   int       `json:"recruit_count"`
	Recruiter      string    `json:"recruiter"`
	RecruiterEmail string    `json:"recruiter_email"`
	PublishedAt    time.Time `json:"published_at"`
}

// SessionSummary is the relational store's view of a candidate's most
// recent interview session: how many answers were submitted, their average
// score, and when the last one arrived.
type SessionSummary struct {
	SessionID    string    `json:"session_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AnswerCount  int       `json:"answer_count"`
	AverageScore float64   `json:"average_score"`
	LastAnswerAt time.Time `json:"last_answer_at"`
}

// PositionPick names the best candidate for a position and why they were
// picked.
type PositionPick struct {
	Position  string          `json:"position"`
	Candidate CandidateRecord `json:"candidate"`
	Reason    string          `json:"reason"`
}

// SalaryPick names the candidate with the lowest parsable expected salary
// for a position.
type SalaryPick struct {
	Position  string          `json:"position"`
	Candidate CandidateRecord `json:"candidate"`
	Salary    float64         `json:"salary"`
}

// DashboardStats is the derived summary view over the merged candidate
// set. It is recomputed on every request and never persisted.
type DashboardStats struct {
	TotalCandidates      int     `json:"total_candidates"`
	ActivePositions      int     `json:"active_positions"`
	CompletedInterviews  int     `json:"completed_interviews"`
	InProgressInterviews int     `json:"in_progress_interviews"`
	CompletionRate       float64 `json:"completion_rate"`

	AverageScore float64 `json:"average_score"`
	MaxScore     float64 `json:"max_score"`
	MinScore     float64 `json:"min_score"`

	DimensionAverages map[Dimension]float64 `json:"dimension_averages"`
	StatusCounts      map[Status]int        `json:"status_counts"`
	PositionCounts    map[string]int        `json:"position_counts"`

	BestCandidates         []PositionPick `json:"best_candidates"`
	LowestSalaryCandidates []SalaryPick   `json:"lowest_salary_candidates"`
}
