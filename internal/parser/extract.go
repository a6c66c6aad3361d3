// Package parser turns the raw text lines of a bank or credit-card statement
// into normalized transactions. It handles the two date grammars (numeric and
// Spanish month names) and the two regional numeric grammars found in mixed
// BBVA/AMEX statements.
package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/gastosmx/expense-classifier/internal/models"
)

// amountPattern anchors a monetary token near the end of a line: 1-3 digit
// clusters grouped by "." or ",", optional 2-decimal suffix, optional
// enclosing parentheses, optional sign prefix and optional trailing CR
// credit marker.
var amountPattern = regexp.MustCompile(
	`(?i)([+-]?\s*\$?\s*\(?\s*\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?\s*\)?)\s*(CR)?\s*$`,
)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// creditWords force an amount negative regardless of how it was printed.
// Issuers list payments without a leading minus, so the keyword signal is
// authoritative over the numeric sign.
var creditWords = []string{"abono", "pago", "payment"}

// descTrimCutset strips residual separator noise from description ends.
const descTrimCutset = " -–—|"

// ExtractDocument runs line reassembly, year inference and per-line
// extraction for one document. Lines that yield no transaction are recorded
// in Skipped with a reason; no line failure aborts the rest of the document.
func ExtractDocument(doc models.DocumentLines) models.DocumentResult {
	res := models.DocumentResult{Source: doc.Source}

	year, ok := InferYear(strings.Join(doc.Lines, "\n"))
	if !ok {
		year = time.Now().Year()
	}

	for i, raw := range ReassembleLines(doc.Lines) {
		line := strings.TrimSpace(multiSpace.ReplaceAllString(raw, " "))

		txn, reason := extractLine(line, year, doc.Source)
		if reason != "" {
			res.Skipped = append(res.Skipped, models.SkippedLine{
				LineNum: i + 1,
				Text:    line,
				Reason:  reason,
			})
			continue
		}
		res.Transactions = append(res.Transactions, txn)
	}

	return res
}

// ExtractTransactions is the silent-skip variant of ExtractDocument: it never
// fails on malformed input, it only returns fewer transactions.
func ExtractTransactions(lines []string, source string) []models.Transaction {
	return ExtractDocument(models.DocumentLines{Source: source, Lines: lines}).Transactions
}

// extractLine parses one normalized line. An empty reason means success.
func extractLine(line string, fallbackYear int, source string) (models.Transaction, string) {
	m := amountPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return models.Transaction{}, models.SkipNoAmount
	}

	amount, err := ParseAmount(line[m[2]:m[3]])
	if err != nil {
		return models.Transaction{}, models.SkipBadAmount
	}

	// CR marker or a payment keyword anywhere on the line marks a credit.
	if m[4] >= 0 || containsAnyFold(line, creditWords) {
		amount = amount.Abs().Neg()
	}

	date, _, ok := FindDate(line, fallbackYear)
	if !ok {
		return models.Transaction{}, models.SkipNoDate
	}

	desc := stripFirstDate(line[:m[2]])
	desc = strings.Trim(desc, descTrimCutset)

	return models.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Source:      source,
	}, ""
}

func containsAnyFold(line string, words []string) bool {
	lower := strings.ToLower(line)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
