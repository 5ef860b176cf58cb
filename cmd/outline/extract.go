package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/outline/internal/api"
	"github.com/jackzampolin/outline/internal/engine"
	"github.com/jackzampolin/outline/internal/layout"
	"github.com/jackzampolin/outline/internal/schema"
)

var extractValidate bool

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Infer the outline of a single document",
	Long: `Extract runs the structure inference pipeline on one document and
prints the output record.

Supported inputs:
  .pdf    styled text lines extracted from the PDF
  .jsonl  pre-extracted layout line dump

Examples:
  outline extract report.pdf
  outline extract report.pdf -o yaml
  outline extract lines.jsonl --validate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cm, err := loadConfig()
		if err != nil {
			return err
		}
		cfg := cm.Get()
		logger := newLogger(cfg)

		lines, err := layout.Open(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}

		eng := engine.New(cfg.ToEngineConfig(), logger)
		doc := eng.Extract(lines)

		if extractValidate {
			if err := schema.ValidateDocument(doc); err != nil {
				return err
			}
		}

		return api.Output(doc)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractValidate, "validate", false, "validate the record against the output schema")
}
