// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textclean

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pdiddy/lexcorpus/pkg/types"
)

// PageStampCleaner deletes a repeating header or footer from spaceless text.
type PageStampCleaner struct {
	pattern *regexp.Regexp
}

// NewPageStampCleaner compiles pattern. An empty pattern selects the
// Official Journal L 119 stamp.
func NewPageStampCleaner(pattern string) (*PageStampCleaner, error) {
	if pattern == "" {
		pattern = types.DefaultPageStampPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling page stamp pattern %q: %w", pattern, err)
	}
	return &PageStampCleaner{pattern: re}, nil
}

// Clean replaces every stamp occurrence in content with the empty string and
// reports how many were removed. Matching spans the whole document, not
// single lines.
func (c *PageStampCleaner) Clean(content string) (string, int) {
	n := len(c.pattern.FindAllStringIndex(content, -1))
	if n == 0 {
		return content, 0
	}
	return c.pattern.ReplaceAllLiteralString(content, ""), n
}

// CleanFile applies Clean to inPath and writes the result to outPath.
func (c *PageStampCleaner) CleanFile(inPath, outPath string, w io.Writer) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	cleaned, n := c.Clean(string(data))
	if err := writeFile(outPath, cleaned); err != nil {
		return err
	}

	fmt.Fprintf(w, "removed %d page stamps, output saved to %s\n", n, outPath)
	return nil
}

// writeFile creates the parent directory of path and writes content to it.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
