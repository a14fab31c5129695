// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textclean removes spaces and page artifacts from extracted text.
package textclean

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrInputNotFound is returned (wrapped) when a stage input file does not exist.
var ErrInputNotFound = errors.New("input file does not exist")

// StripSpaces removes every space character from text. Newlines, tabs and
// all other characters are kept. Stripping already-stripped text is a no-op.
func StripSpaces(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

// StripSpacesFile reads inPath, removes every space and writes the result to
// outPath. A missing input yields an error wrapping ErrInputNotFound.
func StripSpacesFile(inPath, outPath string, w io.Writer) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, inPath)
		}
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	if err := writeFile(outPath, StripSpaces(string(data))); err != nil {
		return err
	}

	fmt.Fprintf(w, "removed spaces from %s, output saved to %s\n", inPath, outPath)
	return nil
}

// ReportStripError prints err the way the strip stage reports failures: a
// missing input gets its own message, anything else is printed as is.
func ReportStripError(w io.Writer, inPath string, err error) {
	if errors.Is(err, ErrInputNotFound) {
		fmt.Fprintf(w, "error: the file %q does not exist\n", inPath)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
