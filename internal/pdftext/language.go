// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/tabula"
	"golang.org/x/text/unicode/norm"
)

// LanguageExtractor reads text with github.com/tsawler/tabula, which decodes
// font encodings and ToUnicode maps, and normalizes it to NFC so accented
// characters are single code points.
type LanguageExtractor struct {
	// Warnings receives tabula's non-fatal warnings. Nil discards them.
	Warnings io.Writer
}

// NewLanguageExtractor creates a LanguageExtractor that reports warnings to w.
func NewLanguageExtractor(w io.Writer) *LanguageExtractor {
	return &LanguageExtractor{Warnings: w}
}

// Name implements Extractor.
func (e *LanguageExtractor) Name() string { return "language" }

// Extract implements Extractor. Blank lines are dropped and the remaining
// lines are joined with newlines, without a trailing one.
func (e *LanguageExtractor) Extract(pdfPath string) (string, error) {
	text, warnings, err := tabula.Open(pdfPath).Text()
	if err != nil {
		return "", err
	}
	if e.Warnings != nil {
		for _, wn := range warnings {
			fmt.Fprintf(e.Warnings, "warning: %s\n", wn.Message)
		}
	}
	return normalizeText(text), nil
}

// normalizeText composes characters to NFC and drops blank lines.
func normalizeText(text string) string {
	return dropBlankLines(norm.NFC.String(text))
}

// dropBlankLines removes lines that are empty or whitespace only.
func dropBlankLines(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
