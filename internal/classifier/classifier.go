// Package classifier assigns spending categories to transaction descriptions
// using an ordered keyword rule list.
package classifier

import "strings"

// Classify returns the category for a description: the first rule in Rules
// with a case-insensitive substring match wins. Unmatched descriptions that
// look like payments or transfers get CategoryPayments; everything else gets
// CategoryOther. Pure and total: the same description always yields the same
// single category.
func Classify(description string) string {
	desc := strings.ToLower(description)

	for _, r := range Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(desc, kw) {
				return r.Category
			}
		}
	}

	for _, kw := range paymentWords {
		if strings.Contains(desc, kw) {
			return CategoryPayments
		}
	}

	return CategoryOther
}

// Categories returns every category label the classifier can emit, in rule
// order with the sentinels last.
func Categories() []string {
	out := make([]string, 0, len(Rules)+2)
	for _, r := range Rules {
		out = append(out, r.Category)
	}
	return append(out, CategoryPayments, CategoryOther)
}
