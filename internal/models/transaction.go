package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single statement movement.
// Sign convention: positive amounts are charges, negative amounts are
// payments, credits and refunds.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
	Category    string          `json:"category,omitempty"`
}

// Month returns the YYYY-MM bucket the transaction falls in.
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// DocumentLines is the ordered raw text of one source document, as handed
// over by the text-extraction collaborator. Immutable once produced.
type DocumentLines struct {
	Source string   `json:"source"`
	Lines  []string `json:"lines"`
}

// Skip reasons recorded for lines that produced no transaction.
const (
	SkipNoAmount  = "no-amount"
	SkipBadAmount = "bad-amount"
	SkipNoDate    = "no-date"
)

// SkippedLine captures why a reassembled line was dropped during extraction.
type SkippedLine struct {
	LineNum int    `json:"lineNum"`
	Text    string `json:"text"`
	Reason  string `json:"reason"`
}

// DocumentResult is the outcome of extracting one document.
type DocumentResult struct {
	Source       string        `json:"source"`
	Transactions []Transaction `json:"transactions"`
	Skipped      []SkippedLine `json:"skipped,omitempty"`
}
