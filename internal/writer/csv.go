// Package writer serializes classified transactions for the export
// collaborators: a flat CSV and an Excel workbook with summary sheets.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gastosmx/expense-classifier/internal/models"
)

// dateLayout renders dates the way the statements print them.
const dateLayout = "02/01/2006"

// CSVWriter writes classified transactions to CSV.
type CSVWriter struct{}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, txns []models.Transaction) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	header := []string{"Fecha", "Mes", "Descripción", "Categoría", "Monto", "Archivo"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range txns {
		row := []string{
			t.Date.Format(dateLayout),
			t.Month(),
			t.Description,
			t.Category,
			t.Amount.StringFixed(2),
			t.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return cw.Error()
}
