package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/outline/internal/api"
	"github.com/jackzampolin/outline/internal/config"
	"github.com/jackzampolin/outline/internal/home"
	"github.com/jackzampolin/outline/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "outline",
	Short: "Infer document outlines from page layout",
	Long: `Outline infers a hierarchical document outline (title plus nested
headings) from the visual layout of page-oriented documents, using only
per-line text and typographic metadata.

The pipeline:
  - Noise filtering (page numbers, boilerplate, dates)
  - Paragraph / heading-likeness classification
  - First-page title detection
  - Linear heading candidate scoring
  - Style clustering into H1-H6 levels`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.outline/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "outline home directory (default: ~/.outline)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config manager for a command invocation.
func loadConfig() (*config.Manager, error) {
	path := cfgFile
	if path == "" {
		h, err := home.New(homeDir)
		if err != nil {
			return nil, err
		}
		if h.ConfigExists() {
			path = h.ConfigPath()
		}
	}
	return config.NewManager(path)
}

// newLogger builds the process logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
}
