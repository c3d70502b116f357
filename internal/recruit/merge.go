package recruit

import "math"

// SessionIndex answers "does this candidate have a live interview
// session?" lookups by name or email. When several sessions share an
// identity the one with the latest answer timestamp wins, so the merger
// only ever sees one summary per candidate.
type SessionIndex struct {
	byName  map[string]SessionSummary
	byEmail map[string]SessionSummary
}

// NewSessionIndex builds an index over session summaries.
func NewSessionIndex(summaries []SessionSummary) *SessionIndex {
	idx := &SessionIndex{
		byName:  make(map[string]SessionSummary),
		byEmail: make(map[string]SessionSummary),
	}
	for _, s := range summaries {
		if s.Name != "" {
			if cur, ok := idx.byName[s.Name]; !ok || s.LastAnswerAt.After(cur.LastAnswerAt) {
				idx.byName[s.Name] = s
			}
		}
		if s.Email != "" {
			if cur, ok := idx.byEmail[s.Email]; !ok || s.LastAnswerAt.After(cur.LastAnswerAt) {
				idx.byEmail[s.Email] = s
			}
		}
	}
	return idx
}

// Find looks a candidate up by name first, then by email. Either side may
// be blank without disqualifying a match on the other field.
func (idx *SessionIndex) Find(name, email string) (SessionSummary, bool) {
	if name != "" {
		if s, ok := idx.byName[name]; ok {
			return s, true
		}
	}
	if email != "" {
		if s, ok := idx.byEmail[email]; ok {
			return s, true
		}
	}
	return SessionSummary{}, false
}

// ApplyOverride merges one relational session summary into a resolved
// candidate record. A session with at least one submitted answer is
// authoritative over anything the spreadsheet said: status becomes
// completed and the total score becomes the truncated session average,
// regardless of what the resolver computed. A session without answers
// leaves the spreadsheet view intact. The merge is idempotent.
func ApplyOverride(rec CandidateRecord, summary *SessionSummary) CandidateRecord {
	out := rec
	if summary == nil {
		out.AnswerCount = 0
		return out
	}

	if summary.AnswerCount > 0 {
		score := math.Trunc(summary.AverageScore)
		out.Status = StatusCompleted
		out.TotalScore = &score
		out.Source = SourceRelationalOverride
		out.AnswerCount = summary.AnswerCount
		return out
	}

	out.AnswerCount = 0
	return out
}

// MergeSessions applies relational overrides to every candidate in order.
func MergeSessions(recs []CandidateRecord, summaries []SessionSummary) []CandidateRecord {
	idx := NewSessionIndex(summaries)
	out := make([]CandidateRecord, len(recs))
	for i, rec := range recs {
		if s, ok := idx.Find(rec.Name, rec.Email); ok {
			out[i] = ApplyOverride(rec, &s)
		} else {
			out[i] = ApplyOverride(rec, nil)
		}
	}
	return out
}
