package recruit

// EvaluationRecord is the relational store's persisted review of one
// candidate: reviewer-entered dimension scores and a total, written
// through the score-update and evaluation endpoints.
type EvaluationRecord struct {
	Name       string
	Email      string
	Dimensions DimensionScores
	TotalScore *float64
}

// ApplyEvaluations folds stored evaluations into raw candidate records
// before resolution. A stored total becomes the record's explicit total
// and stored dimension scores replace the spreadsheet's, so a manual
// correction shows up on the next read instead of sitting write-only in
// the store. Matching is by name first, then email, like the session
// merger. Evaluations with no matching candidate are ignored.
func ApplyEvaluations(recs []CandidateRecord, evals []EvaluationRecord) []CandidateRecord {
	if len(evals) == 0 {
		return recs
	}

	byName := make(map[string]EvaluationRecord)
	byEmail := make(map[string]EvaluationRecord)
	for _, e := range evals {
		if e.Name != "" {
			byName[e.Name] = e
		}
		if e.Email != "" {
			byEmail[e.Email] = e
		}
	}

	out := make([]CandidateRecord, len(recs))
	for i, rec := range recs {
		eval, ok := byName[rec.Name]
		if !ok {
			eval, ok = byEmail[rec.Email]
		}
		if !ok {
			out[i] = rec
			continue
		}

		if eval.TotalScore != nil {
			total := *eval.TotalScore
			rec.ExplicitTotal = &total
		}
		for _, dim := range Dimensions {
			if s := eval.Dimensions.Get(dim); s != nil {
				rec.Dimensions.Set(dim, *s)
			}
		}
		out[i] = rec
	}
	return out
}
