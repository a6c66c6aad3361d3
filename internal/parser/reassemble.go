package parser

import "strings"

// Continuation markers used by annotation-heavy issuers that print reference
// lines (RFC, folio references) under the transaction line.
var continuationMarkers = []string{"rfc", "ref"}

// continuationDelim joins a continuation line onto its predecessor.
const continuationDelim = " | "

// ReassembleLines merges continuation lines into their preceding line so that
// a transaction and its annotations arrive at extraction as one line. A line
// counts as a continuation only when a previous line exists to attach it to.
func ReassembleLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(out) > 0 && isContinuation(line) {
			out[len(out)-1] += continuationDelim + strings.TrimSpace(line)
			continue
		}
		out = append(out, line)
	}
	return out
}

func isContinuation(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, marker := range continuationMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}
