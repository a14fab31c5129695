// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reconcile merges two independently extracted text streams into one
// corrected text. The reference stream (layout-accurate, spaces removed)
// decides where lines break; the donor stream (language-accurate) supplies
// the characters. For every reference line the reconciler looks for the donor
// line that most likely carries the same content:
//
//  1. exact: the reference line equals a stripped donor line;
//  2. suffix: the reference line minus its first SuffixSkip characters
//     equals a stripped donor line (typically a paragraph number such as
//     "1." glued to the text);
//  3. prefix: the first PrefixLength characters agree.
//
// Exact beats partial, suffix beats prefix, and within a category the first
// donor line found top to bottom wins. A reference line that matches nothing
// falls back to the raw layout line. The output always has one line per
// reference position, and a substituted line ends with a line break whenever
// its reference position does.
package reconcile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/lexcorpus/pkg/types"
)

// ErrDonorMismatch is returned when the stripped and original donor streams
// have different line counts and so cannot be addressed by the same index.
var ErrDonorMismatch = errors.New("donor streams differ in line count")

// Resolution records which strategy produced an output line.
type Resolution int

const (
	ResolvedFallback Resolution = iota
	ResolvedExact
	ResolvedSuffix
	ResolvedPrefix
)

func (r Resolution) String() string {
	switch r {
	case ResolvedExact:
		return "exact"
	case ResolvedSuffix:
		return "suffix"
	case ResolvedPrefix:
		return "prefix"
	default:
		return "fallback"
	}
}

// Sources holds the four line streams taking part in reconciliation.
type Sources struct {
	// Reference is the stripped, cleaned layout stream. It sets the output cadence.
	Reference []string

	// DonorStripped is the stripped language stream, the match target.
	DonorStripped []string

	// FallbackReference is the raw layout stream, walked in lock-step with
	// Reference and used when no donor line matches.
	FallbackReference []string

	// DonorOriginal is the raw language stream that supplies substituted content.
	DonorOriginal []string
}

// Reconciler applies the exact, suffix and prefix strategies.
type Reconciler struct {
	suffixSkip   int
	prefixLength int
	separator    string
}

// New returns a Reconciler for cfg. Non-positive thresholds and an empty
// separator take their defaults.
func New(cfg types.ReconcileConfig) *Reconciler {
	r := &Reconciler{
		suffixSkip:   cfg.SuffixSkip,
		prefixLength: cfg.PrefixLength,
		separator:    cfg.SuffixSeparator,
	}
	if r.suffixSkip <= 0 {
		r.suffixSkip = types.DefaultSuffixSkip
	}
	if r.prefixLength <= 0 {
		r.prefixLength = types.DefaultPrefixLength
	}
	if r.separator == "" {
		r.separator = types.DefaultSuffixSeparator
	}
	return r
}

// Reconcile produces one output line per position of the longer of
// Reference and FallbackReference; the shorter is padded with empty lines.
func (r *Reconciler) Reconcile(src Sources) ([]string, types.ReconcileStats, error) {
	var stats types.ReconcileStats
	if len(src.DonorStripped) != len(src.DonorOriginal) {
		return nil, stats, fmt.Errorf("%w: stripped %d, original %d",
			ErrDonorMismatch, len(src.DonorStripped), len(src.DonorOriginal))
	}

	index := NewLineIndex(src.DonorStripped)
	heads := make([]string, len(src.DonorStripped))
	for j, d := range src.DonorStripped {
		heads[j] = headRunes(d, r.prefixLength)
	}

	n := max(len(src.Reference), len(src.FallbackReference))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		ref, fallback := lineAt(src.Reference, i), lineAt(src.FallbackReference, i)
		line, res := r.resolve(ref, fallback, src, index, heads)
		out[i] = terminate(line, res, ref, fallback)
		switch res {
		case ResolvedExact:
			stats.Exact++
		case ResolvedSuffix:
			stats.Suffix++
		case ResolvedPrefix:
			stats.Prefix++
		default:
			stats.Fallback++
		}
	}
	return out, stats, nil
}

// resolve picks the output for one reference line.
func (r *Reconciler) resolve(ref, fallback string, src Sources, index LineIndex, heads []string) (string, Resolution) {
	if j, ok := index.Lookup(ref); ok {
		return src.DonorOriginal[j], ResolvedExact
	}

	suffix, prefix := r.scan(ref, src.DonorStripped, heads)
	switch {
	case suffix >= 0:
		return headRunes(ref, r.suffixSkip) + r.separator + src.DonorOriginal[suffix], ResolvedSuffix
	case prefix >= 0:
		return src.DonorOriginal[prefix], ResolvedPrefix
	default:
		return fallback, ResolvedFallback
	}
}

// scan walks the donor lines once and returns the first suffix candidate and
// the first prefix candidate, -1 when absent. A donor line that suffix-matches
// is not tested for a prefix match. The walk stops as soon as both are found.
func (r *Reconciler) scan(ref string, donor, heads []string) (suffix, prefix int) {
	suffix, prefix = -1, -1
	tail := tailRunes(ref, r.suffixSkip)
	head := headRunes(ref, r.prefixLength)

	for j, d := range donor {
		if tail == d {
			if suffix < 0 {
				suffix = j
			}
		} else if prefix < 0 && head == heads[j] {
			prefix = j
		}
		if suffix >= 0 && prefix >= 0 {
			break
		}
	}
	return suffix, prefix
}

// terminate gives a substituted line the line break its reference position
// has. The last donor line is often unterminated; written mid-file it would
// join the next line.
func terminate(line string, res Resolution, ref, fallback string) string {
	if res == ResolvedFallback || strings.HasSuffix(line, "\n") {
		return line
	}
	if strings.HasSuffix(ref, "\n") || strings.HasSuffix(fallback, "\n") {
		return line + "\n"
	}
	return line
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// FilePaths names the four input files and the output of ReconcileFiles.
type FilePaths struct {
	Reference         string
	DonorStripped     string
	FallbackReference string
	DonorOriginal     string
	Output            string
}

// ReconcileFiles reads the four line streams, reconciles them and writes the
// result to paths.Output.
func (r *Reconciler) ReconcileFiles(paths FilePaths, w io.Writer) (types.ReconcileStats, error) {
	var src Sources
	for _, in := range []struct {
		path string
		dst  *[]string
	}{
		{paths.Reference, &src.Reference},
		{paths.DonorStripped, &src.DonorStripped},
		{paths.FallbackReference, &src.FallbackReference},
		{paths.DonorOriginal, &src.DonorOriginal},
	} {
		lines, err := ReadLines(in.path)
		if err != nil {
			return types.ReconcileStats{}, err
		}
		*in.dst = lines
	}

	out, stats, err := r.Reconcile(src)
	if err != nil {
		return stats, err
	}

	if err := os.MkdirAll(filepath.Dir(paths.Output), 0o755); err != nil {
		return stats, fmt.Errorf("creating directory for %s: %w", paths.Output, err)
	}
	if err := os.WriteFile(paths.Output, []byte(strings.Join(out, "")), 0o644); err != nil {
		return stats, fmt.Errorf("writing %s: %w", paths.Output, err)
	}

	fmt.Fprintf(w, "reconciled %d lines (exact %d, suffix %d, prefix %d, fallback %d), output saved to %s\n",
		stats.Total(), stats.Exact, stats.Suffix, stats.Prefix, stats.Fallback, paths.Output)
	return stats, nil
}
