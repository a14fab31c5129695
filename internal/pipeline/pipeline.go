// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the extraction stages in order: dual extraction,
// space stripping, page stamp cleaning, line reconciliation and article
// splitting. Stages hand over work through files only.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lexcorpus/internal/chunk"
	"github.com/pdiddy/lexcorpus/internal/pdftext"
	"github.com/pdiddy/lexcorpus/internal/reconcile"
	"github.com/pdiddy/lexcorpus/internal/split"
	"github.com/pdiddy/lexcorpus/internal/textclean"
	"github.com/pdiddy/lexcorpus/pkg/types"
)

// Runner executes pipeline stages against one configuration.
type Runner struct {
	cfg      types.PipelineConfig
	layout   pdftext.Extractor
	language pdftext.Extractor

	// now is replaced in tests.
	now func() time.Time
}

// New creates a Runner. The extractors are only used by Extract and Run.
func New(cfg types.PipelineConfig, layout, language pdftext.Extractor) *Runner {
	return &Runner{cfg: cfg, layout: layout, language: language, now: time.Now}
}

// Extract runs both extractors over the configured PDF.
func (r *Runner) Extract(w io.Writer) error {
	if r.layout == nil || r.language == nil {
		return fmt.Errorf("both layout and language extractors are required")
	}
	return pdftext.ExtractBoth(r.layout, r.language, r.cfg.Extraction, w)
}

// PreprocessResult holds the outcome of the strip, clean and reconcile stages.
type PreprocessResult struct {
	Stats types.ReconcileStats

	// StripErrors lists strip-stage failures that were reported and skipped.
	StripErrors []string
}

// Preprocess strips spaces from both raw variants, removes page stamps from
// the stripped layout variant and reconciles the streams into cfg.Output.
//
// A strip failure is reported on w and does not stop the run; the stage
// that needs the missing file fails instead.
func (r *Runner) Preprocess(w io.Writer) (PreprocessResult, error) {
	pc := r.cfg.Preprocess
	var res PreprocessResult

	cleaner, err := textclean.NewPageStampCleaner(pc.PageStampPattern)
	if err != nil {
		return res, err
	}

	for _, s := range []struct{ in, out string }{
		{pc.LayoutInput, pc.LayoutStripped},
		{pc.LanguageInput, pc.LanguageStripped},
	} {
		if err := textclean.StripSpacesFile(s.in, s.out, w); err != nil {
			textclean.ReportStripError(w, s.in, err)
			res.StripErrors = append(res.StripErrors, err.Error())
		}
	}

	if err := cleaner.CleanFile(pc.LayoutStripped, pc.LayoutCleaned, w); err != nil {
		return res, err
	}

	stats, err := r.Reconcile(w)
	res.Stats = stats
	return res, err
}

// Reconcile merges the cleaned layout stream with the language streams
// produced by an earlier Preprocess and writes the corrected text.
func (r *Runner) Reconcile(w io.Writer) (types.ReconcileStats, error) {
	pc := r.cfg.Preprocess
	return reconcile.New(r.cfg.Reconcile).ReconcileFiles(reconcile.FilePaths{
		Reference:         pc.LayoutCleaned,
		DonorStripped:     pc.LanguageStripped,
		FallbackReference: pc.LayoutInput,
		DonorOriginal:     pc.LanguageInput,
		Output:            pc.Output,
	}, w)
}

// Split writes one file per article of the reconciled text.
func (r *Runner) Split(w io.Writer) (int, error) {
	return split.SplitFile(r.cfg.Split, w)
}

// Chunk re-chunks the article directory into the corpus file.
func (r *Runner) Chunk(w io.Writer) (int, error) {
	return chunk.ChunkDir(r.cfg.Chunk, w)
}

// Run executes extraction, preprocessing and splitting in sequence and
// writes a run manifest to cfg.Manifest. Chunking is a separate step.
func (r *Runner) Run(w io.Writer) (types.RunManifest, error) {
	m := types.RunManifest{
		PDFPath:     r.cfg.Extraction.PDFPath,
		StartedAt:   r.now().UTC(),
		Files:       r.files(),
		ArticlesDir: r.cfg.Split.OutputDir,
	}

	// Reject a bad heading pattern before any file is written.
	if _, err := split.NewSplitter(r.cfg.Split.HeadingPattern); err != nil {
		return m, err
	}

	if err := r.Extract(w); err != nil {
		return m, err
	}

	pre, err := r.Preprocess(w)
	m.Reconcile = pre.Stats
	m.StageErrors = pre.StripErrors
	if err != nil {
		return m, err
	}

	n, err := r.Split(w)
	m.Articles = n
	if err != nil {
		return m, err
	}

	m.FinishedAt = r.now().UTC()
	if r.cfg.Manifest != "" {
		if err := WriteManifest(r.cfg.Manifest, m); err != nil {
			return m, err
		}
		fmt.Fprintf(w, "run manifest saved to %s\n", r.cfg.Manifest)
	}
	return m, nil
}

// files names every intermediate file of a run.
func (r *Runner) files() map[string]string {
	pc := r.cfg.Preprocess
	return map[string]string{
		"layout":            r.cfg.Extraction.LayoutOutput,
		"language":          r.cfg.Extraction.LanguageOutput,
		"layout_stripped":   pc.LayoutStripped,
		"language_stripped": pc.LanguageStripped,
		"layout_cleaned":    pc.LayoutCleaned,
		"reconciled":        pc.Output,
	}
}

// WriteManifest writes m to path as YAML.
func WriteManifest(path string, m types.RunManifest) error {
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (types.RunManifest, error) {
	var m types.RunManifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
