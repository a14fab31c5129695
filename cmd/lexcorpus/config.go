// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/lexcorpus/internal/pdftext"
	"github.com/pdiddy/lexcorpus/internal/pipeline"
	"github.com/pdiddy/lexcorpus/pkg/types"
)

// pipelineConfig builds the pipeline configuration from the data directory
// layout and any overrides set through viper. Config file sections named
// after the PipelineConfig fields (extraction, preprocess, reconcile, split,
// chunk, manifest) are decoded over the defaults; the short keys below also
// accept flags and LEXCORPUS_ environment variables.
func pipelineConfig() (types.PipelineConfig, error) {
	cfg := types.DefaultPipelineConfig(viper.GetString("data_dir"))
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}

	if v := viper.GetString("pdf"); v != "" {
		cfg.Extraction.PDFPath = v
	}
	if v := viper.GetInt("reconcile.suffix_skip"); v > 0 {
		cfg.Reconcile.SuffixSkip = v
	}
	if v := viper.GetInt("reconcile.prefix_length"); v > 0 {
		cfg.Reconcile.PrefixLength = v
	}
	if v := viper.GetString("split.file_prefix"); v != "" {
		cfg.Split.FilePrefix = v
	}
	if viper.IsSet("chunk.size") {
		cfg.Chunk.ChunkSize = viper.GetInt("chunk.size")
	}
	if v := viper.GetString("chunk.format"); v != "" {
		cfg.Chunk.Format = types.ExportFormat(v)
	}
	if v := viper.GetString("chunk.output"); v != "" {
		cfg.Chunk.Output = v
	}
	return cfg, nil
}

// newRunner wires the production extractors into a pipeline runner built
// from the current configuration.
func newRunner() (*pipeline.Runner, error) {
	cfg, err := pipelineConfig()
	if err != nil {
		return nil, err
	}
	return pipeline.New(cfg,
		pdftext.NewLayoutExtractor(),
		pdftext.NewLanguageExtractor(os.Stderr),
	), nil
}
