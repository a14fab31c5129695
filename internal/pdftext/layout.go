// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LayoutExtractor reads text row by row with github.com/ledongthuc/pdf. Text
// runs sharing a baseline become one line, so line breaks follow the page.
type LayoutExtractor struct{}

// NewLayoutExtractor creates a LayoutExtractor.
func NewLayoutExtractor() *LayoutExtractor {
	return &LayoutExtractor{}
}

// Name implements Extractor.
func (e *LayoutExtractor) Name() string { return "layout" }

// Extract implements Extractor. Pages are concatenated in order and every
// row ends with a newline.
func (e *LayoutExtractor) Extract(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(joinRows(rowStrings(rows)))
	}
	return b.String(), nil
}

// rowStrings flattens each row into the text runs it holds, left to right.
func rowStrings(rows pdf.Rows) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		runs := make([]string, 0, len(row.Content))
		for _, t := range row.Content {
			runs = append(runs, t.S)
		}
		out = append(out, runs)
	}
	return out
}

// joinRows concatenates the runs of every row and terminates each row with a
// newline. Runs carry their own spacing, so none is added between them.
func joinRows(rows [][]string) string {
	var b strings.Builder
	for _, runs := range rows {
		for _, s := range runs {
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
