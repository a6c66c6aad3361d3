package parser

import (
	"regexp"
	"strconv"
)

// yearPattern matches plausible statement years: 2000-2099.
var yearPattern = regexp.MustCompile(`20\d{2}`)

// InferYear scans the full document text and returns the most frequent
// plausible year. Ties resolve to the year seen first. ok is false when the
// text carries no candidate at all; the caller picks its own default then,
// typically the current year.
func InferYear(text string) (year int, ok bool) {
	matches := yearPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	counts := make(map[string]int, len(matches))
	first := make(map[string]int, len(matches))
	for i, m := range matches {
		if _, seen := counts[m]; !seen {
			first[m] = i
		}
		counts[m]++
	}

	best := matches[0]
	for y, n := range counts {
		if n > counts[best] || (n == counts[best] && first[y] < first[best]) {
			best = y
		}
	}

	year, _ = strconv.Atoi(best)
	return year, true
}
