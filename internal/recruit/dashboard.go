package recruit

import "math"

// Pick reasons reported with best-candidate-per-position entries.
const (
	ReasonHighestScore = "highest score"
	ReasonMostRecent   = "most recent application"
)

// BuildDashboard computes summary statistics over a merged candidate set.
// It is a pure function: every call recomputes from scratch and the input
// is never mutated.
func BuildDashboard(candidates []CandidateRecord) *DashboardStats {
	stats := &DashboardStats{
		TotalCandidates:   len(candidates),
		DimensionAverages: make(map[Dimension]float64, len(Dimensions)),
		StatusCounts:      make(map[Status]int),
		PositionCounts:    make(map[string]int),
	}

	var scored []float64
	for _, c := range candidates {
		stats.StatusCounts[c.Status]++
		stats.PositionCounts[c.Position]++
		if c.TotalScore != nil {
			scored = append(scored, *c.TotalScore)
		}
	}
	stats.CompletedInterviews = stats.StatusCounts[StatusCompleted]
	stats.InProgressInterviews = stats.StatusCounts[StatusInProgress]
	stats.ActivePositions = len(stats.PositionCounts)

	if len(candidates) > 0 {
		rate := float64(stats.CompletedInterviews) / float64(len(candidates)) * 100
		stats.CompletionRate = round1(rate)
	}

	if len(scored) > 0 {
		sum, maxScore, minScore := 0.0, scored[0], scored[0]
		for _, s := range scored {
			sum += s
			if s > maxScore {
				maxScore = s
			}
			if s < minScore {
				minScore = s
			}
		}
		stats.AverageScore = round1(sum / float64(len(scored)))
		stats.MaxScore = maxScore
		stats.MinScore = minScore
	}

	for _, dim := range Dimensions {
		stats.DimensionAverages[dim] = dimensionAverage(candidates, dim)
	}

	stats.BestCandidates = bestCandidatesByPosition(candidates)
	stats.LowestSalaryCandidates = lowestSalaryCandidatesByPosition(candidates)
	return stats
}

// dimensionAverage averages one dimension over records where it is present
// and strictly greater than zero. A stored zero means "unscored" and never
// enters the average; any positive value does, however small or large.
func dimensionAverage(candidates []CandidateRecord, dim Dimension) float64 {
	sum, n := 0.0, 0
	for _, c := range candidates {
		if s := c.Dimensions.Get(dim); s != nil && *s > 0 {
			sum += *s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round1(sum / float64(n))
}

// bestCandidatesByPosition picks, per position, the highest-scored
// candidate (ties broken by first-encountered order). Positions where
// nobody has a score fall back to the most recently created candidate,
// tagged with a different reason.
func bestCandidatesByPosition(candidates []CandidateRecord) []PositionPick {
	positions, groups := groupByPosition(candidates)

	var picks []PositionPick
	for _, pos := range positions {
		group := groups[pos]

		var best *CandidateRecord
		for i := range group {
			c := &group[i]
			if c.TotalScore == nil {
				continue
			}
			if best == nil || *c.TotalScore > *best.TotalScore {
				best = c
			}
		}
		if best != nil {
			picks = append(picks, PositionPick{Position: pos, Candidate: *best, Reason: ReasonHighestScore})
			continue
		}

		var latest *CandidateRecord
		for i := range group {
			c := &group[i]
			if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
				latest = c
			}
		}
		picks = append(picks, PositionPick{Position: pos, Candidate: *latest, Reason: ReasonMostRecent})
	}
	return picks
}

// lowestSalaryCandidatesByPosition picks, per position, the candidate with
// the lowest parsable expected salary. Candidates whose expectation cannot
// be parsed are excluded entirely, not treated as zero.
func lowestSalaryCandidatesByPosition(candidates []CandidateRecord) []SalaryPick {
	positions, groups := groupByPosition(candidates)

	var picks []SalaryPick
	for _, pos := range positions {
		var lowest *SalaryPick
		for _, c := range groups[pos] {
			salary, ok := ParseSalary(c.ExpectedSalary)
			if !ok {
				continue
			}
			if lowest == nil || salary < lowest.Salary {
				lowest = &SalaryPick{Position: pos, Candidate: c, Salary: salary}
			}
		}
		if lowest != nil {
			picks = append(picks, *lowest)
		}
	}
	return picks
}

// groupByPosition groups candidates preserving first-encountered position
// order, so rankings are stable across calls.
func groupByPosition(candidates []CandidateRecord) ([]string, map[string][]CandidateRecord) {
	var positions []string
	groups := make(map[string][]CandidateRecord)
	for _, c := range candidates {
		if _, ok := groups[c.Position]; !ok {
			positions = append(positions, c.Position)
		}
		groups[c.Position] = append(groups[c.Position], c)
	}
	return positions, groups
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
