package writer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gastosmx/expense-classifier/internal/models"
	"github.com/gastosmx/expense-classifier/internal/report"
)

// Sheet names match the workbook layout downstream consumers expect.
const (
	sheetTransactions = "Transacciones"
	sheetByCategory   = "Por Categoría"
	sheetPivot        = "Mes-Categoría"
)

// ExcelWriter writes the export workbook: raw transactions, totals per
// category and the month-by-category pivot.
type ExcelWriter struct{}

// WriteToFile builds the workbook and saves it at path.
func (w *ExcelWriter) WriteToFile(path string, txns []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetTransactions)
	if err := writeTransactionsSheet(f, txns); err != nil {
		return err
	}
	if err := writeCategorySheet(f, txns); err != nil {
		return err
	}
	if err := writePivotSheet(f, txns); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

func writeTransactionsSheet(f *excelize.File, txns []models.Transaction) error {
	rows := [][]interface{}{
		{"Fecha", "Mes", "Descripción", "Categoría", "Monto", "Archivo"},
	}
	for _, t := range txns {
		amount, _ := t.Amount.Float64()
		rows = append(rows, []interface{}{
			t.Date.Format(dateLayout), t.Month(), t.Description, t.Category, amount, t.Source,
		})
	}
	return writeRows(f, sheetTransactions, rows)
}

func writeCategorySheet(f *excelize.File, txns []models.Transaction) error {
	if _, err := f.NewSheet(sheetByCategory); err != nil {
		return err
	}
	rows := [][]interface{}{{"Categoría", "Monto"}}
	for _, ct := range report.ByCategory(txns) {
		total, _ := ct.Total.Float64()
		rows = append(rows, []interface{}{ct.Category, total})
	}
	return writeRows(f, sheetByCategory, rows)
}

func writePivotSheet(f *excelize.File, txns []models.Transaction) error {
	if _, err := f.NewSheet(sheetPivot); err != nil {
		return err
	}

	pivot := report.MonthPivot(txns)
	header := []interface{}{"Mes"}
	for _, cat := range pivot.Categories() {
		header = append(header, cat)
	}

	rows := [][]interface{}{header}
	for _, month := range pivot.Months() {
		row := []interface{}{month}
		for _, cat := range pivot.Categories() {
			cell, _ := pivot.Cell(month, cat).Float64()
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheetPivot, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
