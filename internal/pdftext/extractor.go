// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts two text variants from one PDF. The layout
// variant keeps line boundaries the way they appear on the page but tends to
// garble characters; the language variant gets the characters right but
// breaks lines differently. Reconciliation later takes the best of both.
package pdftext

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/lexcorpus/pkg/types"
)

// Extractor turns a PDF into plain text. Different backends (ledongthuc/pdf,
// tabula) implement this interface.
type Extractor interface {
	// Name identifies the variant in progress output (e.g. "layout").
	Name() string

	// Extract reads the PDF at pdfPath and returns its text.
	Extract(pdfPath string) (string, error)
}

// ExtractTo runs e over pdfPath and writes the text to outPath.
func ExtractTo(e Extractor, pdfPath, outPath string, w io.Writer) error {
	text, err := e.Extract(pdfPath)
	if err != nil {
		return fmt.Errorf("extracting %s text from %s: %w", e.Name(), pdfPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(w, "extracted %s text from %s to %s\n", e.Name(), pdfPath, outPath)
	return nil
}

// ExtractBoth runs the layout and language extractors over cfg.PDFPath, one
// after the other, and writes their outputs to the configured paths. The two
// results are not compared. The first failure aborts.
func ExtractBoth(layout, language Extractor, cfg types.ExtractionConfig, w io.Writer) error {
	if err := ExtractTo(layout, cfg.PDFPath, cfg.LayoutOutput, w); err != nil {
		return err
	}
	return ExtractTo(language, cfg.PDFPath, cfg.LanguageOutput, w)
}
