package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// spanishMonths maps 3-letter Spanish month stems to calendar months.
// The date pattern below captures the full month token ("jul", "julio",
// "JULIO"); resolution keys on the lowercased first three letters.
var spanishMonths = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"set": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

// datePattern matches a date expression embedded in a line:
// day 1-2 digits, month as 1-2 digits or a Spanish month name, year as 2-4
// digits or absent. Separators may be "/", space, ".", "-" or the word "de".
var datePattern = regexp.MustCompile(
	`(?i)\b(\d{1,2})[/\s.\-](?:de)?\s*` +
		`((?:ene|feb|mar|abr|may|jun|jul|ago|sep|set|oct|nov|dic)[a-záéíóú]*|\d{1,2})` +
		`[/\s.\-]*(\d{2,4})?\b`,
)

// Span marks the byte offsets of a matched date expression within a line.
type Span struct {
	Start int
	End   int
}

// FindDate locates the first date expression in line and resolves it to a
// calendar date. A 2-digit year is shifted into the 2000s; a missing year
// falls back to fallbackYear. Returns ok=false when no expression matches or
// the components do not form a real date (day 31 in February and the like).
func FindDate(line string, fallbackYear int) (time.Time, Span, bool) {
	m := datePattern.FindStringSubmatchIndex(line)
	if m == nil {
		return time.Time{}, Span{}, false
	}

	day, _ := strconv.Atoi(line[m[2]:m[3]])

	monthTok := strings.ToLower(line[m[4]:m[5]])
	var month time.Month
	if n, err := strconv.Atoi(monthTok); err == nil {
		if n < 1 || n > 12 {
			return time.Time{}, Span{}, false
		}
		month = time.Month(n)
	} else {
		mm, ok := spanishMonths[monthTok[:3]]
		if !ok {
			return time.Time{}, Span{}, false
		}
		month = mm
	}

	year := fallbackYear
	if m[6] >= 0 {
		tok := line[m[6]:m[7]]
		y, _ := strconv.Atoi(tok)
		if len(tok) == 2 {
			y += 2000
		}
		year = y
	}

	// time.Date normalizes out-of-range components; a round-trip mismatch
	// means the combination was not a real date.
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, Span{}, false
	}

	return d, Span{Start: m[0], End: m[1]}, true
}

// stripFirstDate removes the first date expression from s, if any.
func stripFirstDate(s string) string {
	if loc := datePattern.FindStringIndex(s); loc != nil {
		return s[:loc[0]] + s[loc[1]:]
	}
	return s
}
