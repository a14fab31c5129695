// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// Defaults for the reconciliation heuristics. The values are tuned to the
// formatting of the Official Journal edition of Regulation (EU) 2016/679.
const (
	DefaultSuffixSkip      = 3
	DefaultPrefixLength    = 20
	DefaultSuffixSeparator = "   "
)

// DefaultPageStampPattern matches the running header stamped on every page of
// the Official Journal L 119 edition once spaces have been removed.
const DefaultPageStampPattern = `4\.5\.2016L119/\d{1,3}OfficialJournaloftheEuropeanUnionEN`

// DefaultHeadingPattern matches an article heading line such as "Article 12".
const DefaultHeadingPattern = `(?i)^Article\s+(\d+)\s*$`

// DefaultArticlePrefix is prepended to the article number to name split files.
const DefaultArticlePrefix = "gdpr_article_"

// DefaultChunkSize is the nominal chunk length in characters.
const DefaultChunkSize = 500

// ExtractionConfig holds settings for the dual extraction stage.
type ExtractionConfig struct {
	// PDFPath is the source document.
	PDFPath string `json:"pdf_path" yaml:"pdf_path" mapstructure:"pdf_path"`

	// LayoutOutput receives the layout-accurate text variant.
	LayoutOutput string `json:"layout_output" yaml:"layout_output" mapstructure:"layout_output"`

	// LanguageOutput receives the language-accurate text variant.
	LanguageOutput string `json:"language_output" yaml:"language_output" mapstructure:"language_output"`
}

// PreprocessConfig holds the file layout for the strip, clean and reconcile
// stages that turn the two raw variants into one corrected text.
type PreprocessConfig struct {
	// LayoutInput is the raw layout-accurate text (reconciliation fallback).
	LayoutInput string `json:"layout_input" yaml:"layout_input" mapstructure:"layout_input"`

	// LanguageInput is the raw language-accurate text (substitution donor).
	LanguageInput string `json:"language_input" yaml:"language_input" mapstructure:"language_input"`

	// LayoutStripped receives LayoutInput with every space removed.
	LayoutStripped string `json:"layout_stripped" yaml:"layout_stripped" mapstructure:"layout_stripped"`

	// LanguageStripped receives LanguageInput with every space removed.
	LanguageStripped string `json:"language_stripped" yaml:"language_stripped" mapstructure:"language_stripped"`

	// LayoutCleaned receives LayoutStripped with page stamps removed.
	LayoutCleaned string `json:"layout_cleaned" yaml:"layout_cleaned" mapstructure:"layout_cleaned"`

	// Output receives the reconciled text.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// PageStampPattern is the regular expression removed by the cleaner.
	PageStampPattern string `json:"page_stamp_pattern" yaml:"page_stamp_pattern" mapstructure:"page_stamp_pattern"`
}

// ReconcileConfig holds the line-matching thresholds.
type ReconcileConfig struct {
	// SuffixSkip is the number of leading reference characters dropped before
	// a suffix comparison and kept verbatim in a suffix substitution (default 3).
	SuffixSkip int `json:"suffix_skip" yaml:"suffix_skip" mapstructure:"suffix_skip"`

	// PrefixLength is the number of leading characters compared by a prefix
	// match (default 20).
	PrefixLength int `json:"prefix_length" yaml:"prefix_length" mapstructure:"prefix_length"`

	// SuffixSeparator is placed between the kept reference characters and the
	// donor line in a suffix substitution (default three spaces).
	SuffixSeparator string `json:"suffix_separator" yaml:"suffix_separator" mapstructure:"suffix_separator"`
}

// SplitConfig holds settings for the article splitting stage.
type SplitConfig struct {
	// Input is the reconciled text.
	Input string `json:"input" yaml:"input" mapstructure:"input"`

	// OutputDir receives one file per article. Created if missing.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// FilePrefix is prepended to the article number (default "gdpr_article_").
	FilePrefix string `json:"file_prefix" yaml:"file_prefix" mapstructure:"file_prefix"`

	// HeadingPattern is a regular expression whose first group captures the
	// article number.
	HeadingPattern string `json:"heading_pattern" yaml:"heading_pattern" mapstructure:"heading_pattern"`
}

// ExportFormat selects the chunk corpus serialization.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ChunkConfig holds settings for the chunking stage.
type ChunkConfig struct {
	// InputDir holds the per-article text units.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// Output is the corpus file.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// ChunkSize is the window length in characters (default 500).
	ChunkSize int `json:"chunk_size" yaml:"chunk_size" mapstructure:"chunk_size"`

	// Format selects json or yaml output (default json).
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Preprocess PreprocessConfig `json:"preprocess" yaml:"preprocess" mapstructure:"preprocess"`
	Reconcile  ReconcileConfig  `json:"reconcile" yaml:"reconcile" mapstructure:"reconcile"`
	Split      SplitConfig      `json:"split" yaml:"split" mapstructure:"split"`
	Chunk      ChunkConfig      `json:"chunk" yaml:"chunk" mapstructure:"chunk"`

	// Manifest receives the YAML run manifest written by a full run.
	Manifest string `json:"manifest" yaml:"manifest" mapstructure:"manifest"`
}

// DefaultReconcileConfig returns the thresholds tuned for the GDPR source.
func DefaultReconcileConfig() ReconcileConfig {
	return ReconcileConfig{
		SuffixSkip:      DefaultSuffixSkip,
		PrefixLength:    DefaultPrefixLength,
		SuffixSeparator: DefaultSuffixSeparator,
	}
}

// DefaultPipelineConfig lays out every stage file under dataDir:
//
//	pdf/gdpr_2016.pdf
//	text/layout.txt, text/language.txt
//	text/layout_dropped_spaces.txt, text/language_dropped_spaces.txt
//	text/layout_dropped_spaces_cleaned.txt
//	text/gdpr_2016.txt, text/manifest.yaml
//	text/split_articles/
//	preprocessed_chunks.json
func DefaultPipelineConfig(dataDir string) PipelineConfig {
	text := filepath.Join(dataDir, "text")
	layout := filepath.Join(text, "layout.txt")
	language := filepath.Join(text, "language.txt")
	reconciled := filepath.Join(text, "gdpr_2016.txt")
	articles := filepath.Join(text, "split_articles")

	return PipelineConfig{
		Extraction: ExtractionConfig{
			PDFPath:        filepath.Join(dataDir, "pdf", "gdpr_2016.pdf"),
			LayoutOutput:   layout,
			LanguageOutput: language,
		},
		Preprocess: PreprocessConfig{
			LayoutInput:      layout,
			LanguageInput:    language,
			LayoutStripped:   filepath.Join(text, "layout_dropped_spaces.txt"),
			LanguageStripped: filepath.Join(text, "language_dropped_spaces.txt"),
			LayoutCleaned:    filepath.Join(text, "layout_dropped_spaces_cleaned.txt"),
			Output:           reconciled,
			PageStampPattern: DefaultPageStampPattern,
		},
		Reconcile: DefaultReconcileConfig(),
		Split: SplitConfig{
			Input:          reconciled,
			OutputDir:      articles,
			FilePrefix:     DefaultArticlePrefix,
			HeadingPattern: DefaultHeadingPattern,
		},
		Chunk: ChunkConfig{
			InputDir:  articles,
			Output:    filepath.Join(dataDir, "preprocessed_chunks.json"),
			ChunkSize: DefaultChunkSize,
			Format:    FormatJSON,
		},
		Manifest: filepath.Join(text, "manifest.yaml"),
	}
}
