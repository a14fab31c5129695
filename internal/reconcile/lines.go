// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reconcile

import (
	"fmt"
	"os"
	"strings"
)

// SplitLines splits text into lines, each keeping its trailing newline. A
// final line without a newline is kept as is; empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ReadLines reads path and splits it with SplitLines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// LineIndex maps exact line content to its position in a stream. When a line
// occurs more than once the last position wins.
type LineIndex map[string]int

// NewLineIndex indexes lines by content.
func NewLineIndex(lines []string) LineIndex {
	idx := make(LineIndex, len(lines))
	for i, l := range lines {
		idx[l] = i
	}
	return idx
}

// Lookup returns the indexed position of line.
func (x LineIndex) Lookup(line string) (int, bool) {
	i, ok := x[line]
	return i, ok
}

// headRunes returns the first n runes of s, or s when it is shorter.
func headRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// tailRunes returns s without its first n runes, or "" when s is shorter.
func tailRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[i:]
		}
		count++
	}
	return ""
}
