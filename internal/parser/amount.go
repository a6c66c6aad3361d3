package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAmountParse reports a candidate token that is not a monetary literal.
var ErrAmountParse = errors.New("not a monetary amount")

// latinGrammar matches thousands-dot / decimal-comma amounts like "1.234,56".
// Anything else is treated as thousands-comma / decimal-dot. A bare "1.234"
// therefore parses as one-point-two-three-four; only the full d.ddd,dd shape
// triggers the separator swap.
var latinGrammar = regexp.MustCompile(`\d+\.\d{3},\d{2}$`)

// ParseAmount converts a monetary literal into a signed decimal. It accepts
// currency symbols, internal spaces, either separator grammar, an enclosing
// parenthesis pair (meaning negative) and an explicit leading sign.
func ParseAmount(token string) (decimal.Decimal, error) {
	s := strings.TrimSpace(token)

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 {
		neg = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00A0", "")

	if latinGrammar.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountParse, token)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountParse, token)
	}

	if neg {
		d = d.Neg()
	}
	return d, nil
}
