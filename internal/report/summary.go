// Package report aggregates classified transactions into the summaries the
// presentation and export collaborators consume.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gastosmx/expense-classifier/internal/classifier"
	"github.com/gastosmx/expense-classifier/internal/models"
)

// hiddenCategories are excluded from spending summaries: they are not direct
// expenses.
var hiddenCategories = map[string]bool{
	classifier.CategoryPayments: true,
}

// CategoryTotal is the spend accumulated under one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// isExpense reports whether a transaction counts toward spending summaries:
// charges only, and not in a hidden category.
func isExpense(t models.Transaction) bool {
	return t.Amount.IsPositive() && !hiddenCategories[t.Category]
}

// ByCategory sums expenses per category, largest first. Credits and hidden
// categories are left out; ties break alphabetically.
func ByCategory(txns []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if !isExpense(t) {
			continue
		}
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for cat, total := range sums {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Pivot is a month-by-category spending table.
type Pivot struct {
	months     []string
	categories []string
	cells      map[string]map[string]decimal.Decimal
}

// MonthPivot builds the YYYY-MM by category sum table over expenses.
func MonthPivot(txns []models.Transaction) *Pivot {
	p := &Pivot{cells: make(map[string]map[string]decimal.Decimal)}

	monthSeen := make(map[string]bool)
	catSeen := make(map[string]bool)
	for _, t := range txns {
		if !isExpense(t) {
			continue
		}
		month := t.Month()
		if p.cells[month] == nil {
			p.cells[month] = make(map[string]decimal.Decimal)
		}
		p.cells[month][t.Category] = p.cells[month][t.Category].Add(t.Amount)
		monthSeen[month] = true
		catSeen[t.Category] = true
	}

	for m := range monthSeen {
		p.months = append(p.months, m)
	}
	sort.Strings(p.months)
	for c := range catSeen {
		p.categories = append(p.categories, c)
	}
	sort.Strings(p.categories)

	return p
}

// Months returns the pivot's month keys in chronological order.
func (p *Pivot) Months() []string {
	return p.months
}

// Categories returns the pivot's category columns in alphabetical order.
func (p *Pivot) Categories() []string {
	return p.categories
}

// Cell returns the spend for one month and category, zero when empty.
func (p *Pivot) Cell(month, category string) decimal.Decimal {
	return p.cells[month][category]
}

// Map returns the pivot as nested month → category → sum maps, for JSON
// serialization. Zero cells are omitted.
func (p *Pivot) Map() map[string]map[string]decimal.Decimal {
	out := make(map[string]map[string]decimal.Decimal, len(p.cells))
	for month, row := range p.cells {
		out[month] = make(map[string]decimal.Decimal, len(row))
		for cat, sum := range row {
			out[month][cat] = sum
		}
	}
	return out
}
