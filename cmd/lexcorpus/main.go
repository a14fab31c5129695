// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lexcorpus CLI. It turns a
// regulation PDF into one text file per article and a chunked corpus.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the lexcorpus CLI.
var rootCmd = &cobra.Command{
	Use:   "lexcorpus",
	Short: "Build a clean article corpus from a regulation PDF",
	Long: `lexcorpus extracts a regulation PDF twice, once for layout and once for
characters, reconciles the two streams line by line and splits the result
into one file per article. The chunk command turns the article files into a
JSON or YAML corpus.

Each stage is a subcommand: extract, preprocess, split and chunk. The run
command executes extract, preprocess and split in order. Stages hand over
work through files under the data directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lexcorpus.yaml or ~/.config/lexcorpus/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "root directory of the pipeline files")
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lexcorpus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lexcorpus"))
		}
	}

	viper.SetEnvPrefix("LEXCORPUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
