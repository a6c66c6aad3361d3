package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"AMAZON MX MARKETPLACE", "Amazon"},
		{"UBER EATS CDMX", "Uber Eats"},
		{"SPOTIFY P1234ABCD", "Suscripciones Stream"},
		{"APPLE.COM/BILL", "Suscripciones Tools"},
		{"PEMEX 5112 NAUCALPAN", "Gasolina"},
		{"METLIFE MEXICO SA", "Seguros"},
		{"CINEPOLIS SATELITE", "Cines"},
		{"WAL-MART SUPERCENTER", "Supermercado"},
		{"FARMACIA SAN PABLO", "Farmacias"},
		{"C.F.E. CFEMATICO", "Gobierno"},
		{"TELMEX RECIBO", "Servicios"},
		{"TRANSFERENCIA SPEI ENVIADA", "Pagos y Abonos"},
		{"ZZZZ COMERCIO DESCONOCIDO", "Otros"},
		{"", "Otros"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.description))
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("amazon mx"), Classify("AMAZON MX"))
	assert.Equal(t, "Servicios", Classify("at&t pago de servicio"))
}

func TestClassifyRuleOrderWins(t *testing.T) {
	// Both "pago" (payments fallback) and "amazon" (rule 1) appear; the
	// ordered rule list decides, not the fallback.
	assert.Equal(t, "Amazon", Classify("PAGO AMAZON MX"))

	// "oxxo gas" sits under Gasolina, which precedes Conveniencia's "oxxo".
	assert.Equal(t, "Gasolina", Classify("OXXO GAS PERINORTE"))
}

func TestClassifyIsIdempotent(t *testing.T) {
	for _, desc := range []string{"AMAZON MX", "PAGO RECIBIDO GRACIAS", "QUIEN SABE QUE"} {
		first := Classify(desc)
		second := Classify(desc)
		assert.Equal(t, first, second, "classification of %q must be stable", desc)
	}
}

func TestRulesAreLowerCase(t *testing.T) {
	// Matching lowercases the description only, so keywords must already be
	// lower case or they can never match.
	for _, r := range Rules {
		for _, kw := range r.Keywords {
			assert.Equal(t, kw, toLower(kw), "rule %q keyword %q", r.Category, kw)
		}
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Equal(t, len(Rules)+2, len(cats))
	assert.Equal(t, CategoryPayments, cats[len(cats)-2])
	assert.Equal(t, CategoryOther, cats[len(cats)-1])
}
