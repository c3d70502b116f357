package recruit

import "math"

// Resolve computes a candidate's status and total score from the signals
// the normalizer collected. The precedence is fixed and must not be
// reordered: an explicit reviewer-entered total outranks a computed
// dimension average, which outranks a bare interviewed flag.
//
//  1. Explicit total present        -> completed, that value.
//  2. Any dimension score present   -> completed, mean of present scores.
//  3. Interviewed flag set          -> in_progress, no score.
//  4. Otherwise                     -> pending, no score.
//
// Resolve returns a new record; the input is not mutated.
func Resolve(rec CandidateRecord) CandidateRecord {
	out := rec
	out.Source = SourceSpreadsheet
	out.AnswerCount = 0

	if rec.ExplicitTotal != nil {
		total := *rec.ExplicitTotal
		out.Status = StatusCompleted
		out.TotalScore = &total
		return out
	}

	if scores := rec.Dimensions.Present(); len(scores) > 0 {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		mean := sum / float64(len(scores))
		out.Status = StatusCompleted
		out.TotalScore = &mean
		return out
	}

	if rec.Interviewed {
		out.Status = StatusInProgress
		out.TotalScore = nil
		return out
	}

	out.Status = StatusPending
	out.TotalScore = nil
	return out
}

// ResolveAll resolves every record in order, returning a fresh slice.
func ResolveAll(recs []CandidateRecord) []CandidateRecord {
	out := make([]CandidateRecord, len(recs))
	for i, rec := range recs {
		out[i] = Resolve(rec)
	}
	return out
}

// DisplayScore rounds a resolved total score to the nearest integer for
// presentation. Internal averaging keeps the float.
func DisplayScore(score float64) int {
	return int(math.Round(score))
}
