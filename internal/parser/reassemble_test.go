package parser

import (
	"reflect"
	"testing"
)

func TestReassembleLines(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name: "rfc line merges into predecessor",
			input: []string{
				"01/07/2025 AMAZON MX 259.90",
				"RFC AMA123456XYZ",
			},
			expected: []string{
				"01/07/2025 AMAZON MX 259.90 | RFC AMA123456XYZ",
			},
		},
		{
			name: "ref line merges too",
			input: []string{
				"02/07/2025 TELMEX 599.00",
				"  Ref: 99887766",
			},
			expected: []string{
				"02/07/2025 TELMEX 599.00 | Ref: 99887766",
			},
		},
		{
			name: "continuation with no predecessor stays",
			input: []string{
				"RFC SIN TRANSACCION",
				"01/07/2025 OXXO 45.00",
			},
			expected: []string{
				"RFC SIN TRANSACCION",
				"01/07/2025 OXXO 45.00",
			},
		},
		{
			name: "ordinary lines pass through",
			input: []string{
				"01/07/2025 OXXO 45.00",
				"02/07/2025 PEMEX 800.00",
			},
			expected: []string{
				"01/07/2025 OXXO 45.00",
				"02/07/2025 PEMEX 800.00",
			},
		},
		{
			name: "consecutive continuations pile onto the same line",
			input: []string{
				"03/07/2025 AMEX COMPRA 1,200.00",
				"RFC AAA111",
				"REF BBB222",
			},
			expected: []string{
				"03/07/2025 AMEX COMPRA 1,200.00 | RFC AAA111 | REF BBB222",
			},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReassembleLines(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %#v, want %#v", got, tt.expected)
			}
		})
	}
}
