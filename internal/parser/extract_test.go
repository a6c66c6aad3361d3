package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gastosmx/expense-classifier/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractTransactionsTwoLineDocument(t *testing.T) {
	lines := []string{
		"01/07/2025 AMAZON MX 259.90",
		"05 de julio AMAZON MX 150.00",
	}

	txns := ExtractTransactions(lines, "bbva_julio.pdf")
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}

	if !txns[0].Date.Equal(date(2025, time.July, 1)) {
		t.Errorf("first date: got %s", txns[0].Date)
	}
	if !txns[0].Amount.Equal(decimal.RequireFromString("259.90")) {
		t.Errorf("first amount: got %s", txns[0].Amount)
	}
	if txns[0].Description != "AMAZON MX" {
		t.Errorf("first description: got %q", txns[0].Description)
	}

	// Second line has no year; the document-level inferred year applies.
	if !txns[1].Date.Equal(date(2025, time.July, 5)) {
		t.Errorf("second date: got %s", txns[1].Date)
	}
	if !txns[1].Amount.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("second amount: got %s", txns[1].Amount)
	}

	for _, txn := range txns {
		if txn.Source != "bbva_julio.pdf" {
			t.Errorf("source: got %q", txn.Source)
		}
	}
}

func TestExtractTransactionsPaymentKeywordForcesNegative(t *testing.T) {
	txns := ExtractTransactions([]string{"10/07/2025 PAGO RECIBIDO GRACIAS 1,000.00"}, "amex.pdf")
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	if !txns[0].Amount.Equal(decimal.RequireFromString("-1000.00")) {
		t.Errorf("amount: got %s, want -1000.00", txns[0].Amount)
	}
}

func TestExtractTransactionsCreditMarker(t *testing.T) {
	txns := ExtractTransactions([]string{"12/07/2025 DEVOLUCION TIENDA 500.00 CR"}, "amex.pdf")
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	if !txns[0].Amount.Equal(decimal.RequireFromString("-500.00")) {
		t.Errorf("amount: got %s, want -500.00", txns[0].Amount)
	}
}

func TestExtractTransactionsEuropeanGrammar(t *testing.T) {
	txns := ExtractTransactions([]string{"20/07/2025 MUEBLERIA CENTRO 1.234,56"}, "bbva.pdf")
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	if !txns[0].Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("amount: got %s, want 1234.56", txns[0].Amount)
	}
}

func TestExtractTransactionsSkipsAndContinues(t *testing.T) {
	lines := []string{
		"ESTADO DE CUENTA JULIO 2025",
		"01/07/2025 AMAZON MX 259.90",
		"SALDO ANTERIOR",
		"05/07/2025 OXXO GAS 400.00",
	}

	txns := ExtractTransactions(lines, "bbva.pdf")
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}
	if txns[1].Description != "OXXO GAS" {
		t.Errorf("second description: got %q", txns[1].Description)
	}
}

func TestExtractDocumentDiagnostics(t *testing.T) {
	doc := models.DocumentLines{
		Source: "amex.pdf",
		Lines: []string{
			"SALDO ANTERIOR",
			"SIN FECHA AQUI 2,500.00",
			"01/07/2025 AMAZON MX 259.90",
		},
	}

	res := ExtractDocument(doc)
	if len(res.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(res.Transactions))
	}
	if len(res.Skipped) != 2 {
		t.Fatalf("got %d skipped lines, want 2", len(res.Skipped))
	}
	if res.Skipped[0].Reason != models.SkipNoAmount {
		t.Errorf("first skip reason: got %q, want %q", res.Skipped[0].Reason, models.SkipNoAmount)
	}
	if res.Skipped[1].Reason != models.SkipNoDate {
		t.Errorf("second skip reason: got %q, want %q", res.Skipped[1].Reason, models.SkipNoDate)
	}
	if res.Skipped[1].LineNum != 2 {
		t.Errorf("second skip line number: got %d, want 2", res.Skipped[1].LineNum)
	}
}

func TestExtractTransactionsBadAmountSkipped(t *testing.T) {
	// OCR noise: an opening parenthesis with no close still matches the
	// amount shape but is not a parseable literal.
	doc := models.DocumentLines{
		Source: "bbva.pdf",
		Lines:  []string{"01/07/2025 COMPRA RARA (1,250.00"},
	}

	res := ExtractDocument(doc)
	if len(res.Transactions) != 0 {
		t.Fatalf("got %d transactions, want 0", len(res.Transactions))
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("got %d skipped lines, want 1", len(res.Skipped))
	}
	if res.Skipped[0].Reason != models.SkipBadAmount {
		t.Errorf("skip reason: got %q, want %q", res.Skipped[0].Reason, models.SkipBadAmount)
	}
}

func TestExtractTransactionsEmptyDocument(t *testing.T) {
	if got := ExtractTransactions(nil, "vacio.pdf"); len(got) != 0 {
		t.Errorf("got %d transactions, want 0", len(got))
	}
}
