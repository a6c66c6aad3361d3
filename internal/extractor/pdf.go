// Package extractor is the text-extraction collaborator: it turns a PDF
// statement into the ordered text lines the core pipeline consumes. The core
// never depends on this package; it exists so the CLI and API are usable end
// to end.
package extractor

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractLines reads a PDF file and returns its text as one flat sequence of
// lines, page after page. It tries row-based extraction first and falls back
// to coordinate-based row reconstruction for PDFs that report no rows.
func ExtractLines(filePath string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %q: %w", filePath, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF %q has no pages", filePath)
	}

	lines = extractByRow(r, numPages)
	if !isReadableText(lines) {
		lines = extractByContent(r, numPages)
	}
	if !isReadableText(lines) {
		return nil, fmt.Errorf("no readable text in %q; the PDF may be scanned or use custom font encodings", filePath)
	}

	return lines, nil
}

// extractByRow uses GetTextByRow, which preserves layout best.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var lines []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// extractByContent reads raw text objects and groups them into rows by Y
// coordinate, sorting each row left to right.
func extractByContent(r *pdf.Reader, numPages int) []string {
	var lines []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type textItem struct {
			x float64
			s string
		}
		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		// PDF Y runs bottom to top.
		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		for _, y := range yKeys {
			items := rowMap[y]
			sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })

			var b strings.Builder
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					// Large X gap marks a column boundary.
					b.WriteString("  ")
				}
				b.WriteString(item.s)
				prevX = item.x
			}
			line := strings.TrimSpace(b.String())
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// isReadableText checks that the extracted lines hold enough actual text and
// are not binary garbage from identity-encoded fonts.
func isReadableText(lines []string) bool {
	total := 0
	readable := 0
	for _, line := range lines {
		for _, r := range line {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*`, r) ||
				r == '£' || r == '€' || r == 'á' || r == 'é' || r == 'í' ||
				r == 'ó' || r == 'ú' || r == 'ñ' {
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	return float64(readable)/float64(total) > 0.6
}
