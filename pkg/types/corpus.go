// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the lexcorpus pipeline:
// stage configuration, split articles, corpus chunks and the run manifest.
package types

import (
	"strings"
	"time"
)

// Article is a heading-delimited span of reconciled lines.
type Article struct {
	// ID is the number captured from the heading line (e.g. "12"). IDs are
	// not guaranteed unique or ordered.
	ID string `json:"id" yaml:"id"`

	// Lines holds the heading line and every line up to the next heading,
	// each with its trailing newline.
	Lines []string `json:"lines" yaml:"lines"`
}

// Text returns the article content as it is written to disk.
func (a Article) Text() string {
	return strings.Join(a.Lines, "")
}

// Chunk is a fixed-length window cut from one unit's text.
type Chunk struct {
	// ID is "<unitID>_<offset>", where offset is the window's starting
	// character position within the unit.
	ID string `json:"id" yaml:"id"`

	// Text is the window content with surrounding whitespace trimmed.
	Text string `json:"text" yaml:"text"`
}

// ReconcileStats counts how each reference line was resolved.
type ReconcileStats struct {
	Exact    int `json:"exact" yaml:"exact"`
	Suffix   int `json:"suffix" yaml:"suffix"`
	Prefix   int `json:"prefix" yaml:"prefix"`
	Fallback int `json:"fallback" yaml:"fallback"`
}

// Total returns the number of output lines.
func (s ReconcileStats) Total() int {
	return s.Exact + s.Suffix + s.Prefix + s.Fallback
}

// RunManifest records the outputs of a full pipeline run.
type RunManifest struct {
	PDFPath     string            `json:"pdf_path" yaml:"pdf_path"`
	StartedAt   time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time         `json:"finished_at" yaml:"finished_at"`
	Files       map[string]string `json:"files" yaml:"files"`
	Reconcile   ReconcileStats    `json:"reconcile" yaml:"reconcile"`
	Articles    int               `json:"articles" yaml:"articles"`
	ArticlesDir string            `json:"articles_dir" yaml:"articles_dir"`
	StageErrors []string          `json:"stage_errors,omitempty" yaml:"stage_errors,omitempty"`
}
