// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split partitions reconciled text into one file per article.
package split

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/lexcorpus/internal/reconcile"
	"github.com/pdiddy/lexcorpus/pkg/types"
)

// Splitter recognizes article heading lines.
type Splitter struct {
	heading *regexp.Regexp
}

// NewSplitter compiles pattern, whose first capture group must hold the
// article number. An empty pattern selects "Article <n>".
func NewSplitter(pattern string) (*Splitter, error) {
	if pattern == "" {
		pattern = types.DefaultHeadingPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling heading pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("heading pattern %q has no capture group", pattern)
	}
	return &Splitter{heading: re}, nil
}

// HeadingID reports whether line is a heading and returns its article
// number. The trailing line break is ignored.
func (s *Splitter) HeadingID(line string) (string, bool) {
	m := s.heading.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Split groups lines into articles. Each article starts at a heading line
// and runs up to the next heading or the end of input. Lines before the
// first heading are discarded.
func (s *Splitter) Split(lines []string) []types.Article {
	var articles []types.Article
	for _, line := range lines {
		if id, ok := s.HeadingID(line); ok {
			articles = append(articles, types.Article{ID: id, Lines: []string{line}})
			continue
		}
		if n := len(articles); n > 0 {
			articles[n-1].Lines = append(articles[n-1].Lines, line)
		}
	}
	return articles
}

// WriteArticles writes each article to dir/<prefix><id>.txt, creating dir if
// needed, and rewrites a "saved articles: n" progress line on w after each
// one. A later article with a repeated id overwrites the earlier file.
func WriteArticles(articles []types.Article, dir, prefix string, w io.Writer) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating article directory %s: %w", dir, err)
	}

	saved := 0
	for _, a := range articles {
		path := filepath.Join(dir, prefix+a.ID+".txt")
		if err := os.WriteFile(path, []byte(a.Text()), 0o644); err != nil {
			fmt.Fprintln(w)
			return saved, fmt.Errorf("writing article %s: %w", a.ID, err)
		}
		saved++
		fmt.Fprintf(w, "\rsaved articles: %d", saved)
	}
	fmt.Fprintf(w, "\rsaved articles: %d\n", saved)
	return saved, nil
}

// SplitFile reads cfg.Input, splits it and writes the articles to
// cfg.OutputDir. It returns the number of article files written.
func SplitFile(cfg types.SplitConfig, w io.Writer) (int, error) {
	s, err := NewSplitter(cfg.HeadingPattern)
	if err != nil {
		return 0, err
	}

	lines, err := reconcile.ReadLines(cfg.Input)
	if err != nil {
		return 0, err
	}

	return WriteArticles(s.Split(lines), cfg.OutputDir, cfg.FilePrefix, w)
}
