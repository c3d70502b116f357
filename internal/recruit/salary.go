package recruit

import (
	"regexp"
	"strconv"
	"strings"
)

var salaryNumber = regexp.MustCompile(`[\d.]+`)

// salary strings that mean "no expectation given"; they are excluded from
// salary rankings rather than treated as zero.
var salaryPlaceholders = map[string]struct{}{
	"":          {},
	"面议":        {},
	"未提供":       {},
	NotProvided: {},
}

// ParseSalary extracts a numeric monthly salary from a free-text
// expectation such as "15000", "15K" or "1.5万". The first numeric
// substring is taken; a thousand marker (k/K) multiplies by 1,000 and a
// ten-thousand marker (万) by 10,000. The second return value is false for
// placeholder or unparsable strings, which callers must exclude from any
// salary-based ranking.
func ParseSalary(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if _, ok := salaryPlaceholders[s]; ok {
		return 0, false
	}

	match := salaryNumber.FindString(s)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	switch {
	case strings.ContainsAny(s, "kK"):
		n *= 1000
	case strings.Contains(s, "万"):
		n *= 10000
	}
	return n, true
}
