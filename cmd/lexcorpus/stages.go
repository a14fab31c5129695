// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract layout and language text variants from the PDF",
	Long: `Extract reads the regulation PDF twice. The layout variant keeps the page's
line breaks and is written to text/layout.txt; the language variant keeps
accurate characters and is written to text/language.txt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		return r.Extract(os.Stdout)
	},
}

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Strip spaces, remove page stamps and reconcile the two variants",
	Long: `Preprocess removes every space from both text variants, deletes page
stamps from the stripped layout variant and reconciles the two streams into
text/gdpr_2016.txt. A missing variant is reported and skipped; the
reconciliation that needs it then fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		_, err = r.Preprocess(os.Stdout)
		return err
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-run line reconciliation over existing preprocessed files",
	Long: `Reconcile merges the cleaned layout stream with the language streams and
writes the corrected text. Use it to try other thresholds without repeating
the strip and clean steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		_, err = r.Reconcile(os.Stdout)
		return err
	},
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the reconciled text into one file per article",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		_, err = r.Split(os.Stdout)
		return err
	},
}

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Chunk the article files into a JSON or YAML corpus",
	Long: `Chunk reads every .txt file in the article directory, cuts it into
fixed-size character windows and writes the chunks as a single JSON array
(default) or YAML sequence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		_, err = r.Chunk(os.Stdout)
		return err
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run extract, preprocess and split in order",
	Long: `Run executes the extraction pipeline end to end and writes a run manifest
to text/manifest.yaml. Chunking stays a separate step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		m, err := r.Run(os.Stdout)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\n%d articles in %s (%s)\n",
			m.Articles, m.ArticlesDir, m.FinishedAt.Sub(m.StartedAt).Round(time.Millisecond))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{extractCmd, runCmd} {
		c.Flags().String("pdf", "", "source PDF (default: <data-dir>/pdf/gdpr_2016.pdf)")
	}
	for _, c := range []*cobra.Command{preprocessCmd, reconcileCmd, runCmd} {
		c.Flags().Int("suffix-skip", 0, "leading characters ignored by suffix matching (default 3)")
		c.Flags().Int("prefix-length", 0, "characters compared by prefix matching (default 20)")
	}
	for _, c := range []*cobra.Command{splitCmd, runCmd} {
		c.Flags().String("prefix", "", `article file name prefix (default "gdpr_article_")`)
	}
	chunkCmd.Flags().Int("size", 0, "chunk size in characters (default 500)")
	chunkCmd.Flags().String("format", "", "output format: json or yaml (default json)")
	chunkCmd.Flags().String("output", "", "output file (default: <data-dir>/preprocessed_chunks.json)")

	// Flags bind per command so only the running command's values reach viper.
	bindings := map[string]string{
		"pdf":           "pdf",
		"suffix-skip":   "reconcile.suffix_skip",
		"prefix-length": "reconcile.prefix_length",
		"prefix":        "split.file_prefix",
		"size":          "chunk.size",
		"format":        "chunk.format",
		"output":        "chunk.output",
	}
	for _, c := range []*cobra.Command{extractCmd, preprocessCmd, reconcileCmd, splitCmd, chunkCmd, runCmd} {
		c.PreRunE = func(cmd *cobra.Command, args []string) error {
			for flag, key := range bindings {
				if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
					if err := viper.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			return nil
		}
		rootCmd.AddCommand(c)
	}
}
