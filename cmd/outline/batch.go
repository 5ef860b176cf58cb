package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/outline/internal/api"
	"github.com/jackzampolin/outline/internal/batch"
	"github.com/jackzampolin/outline/internal/config"
	"github.com/jackzampolin/outline/internal/engine"
)

var (
	batchInputDir  string
	batchOutputDir string
	batchWorkers   int
	batchValidate  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of documents",
	Long: `Batch runs structure inference over every supported document in the
input directory and writes one <name>.json record per document into the
output directory.

Documents are processed concurrently and independently: a failure on one
document is reported and does not stop the rest.

Examples:
  outline batch --input ./docs --output-dir ./records
  outline batch --input ./docs --output-dir ./records --workers 4 --validate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cm, err := loadConfig()
		if err != nil {
			return err
		}
		cfg := cm.Get()
		logger := newLogger(cfg)

		eng := engine.New(cfg.ToEngineConfig(), logger)

		// Config edits during a long run apply to documents that have not
		// started yet; each document snapshots the engine config once.
		cm.OnChange(func(c *config.Config) {
			eng.SetConfig(c.ToEngineConfig())
			logger.Info("config reloaded", "score_threshold", c.Engine.ScoreThreshold)
		})
		cm.WatchConfig()

		workers := batchWorkers
		if workers == 0 {
			workers = cfg.Batch.Workers
		}
		validate := resolveValidate(cmd, cfg)
		res, err := batch.Run(ctx, eng, batch.Request{
			InputDir:  batchInputDir,
			OutputDir: batchOutputDir,
			Workers:   workers,
			Validate:  validate,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		if res.Failed > 0 {
			if outErr := api.Output(res); outErr != nil {
				return outErr
			}
			return fmt.Errorf("%d of %d documents failed", res.Failed, res.Failed+res.Processed)
		}
		return api.Output(res)
	},
}

// resolveValidate prefers an explicit --validate flag, in either
// direction, over the configured default.
func resolveValidate(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("validate") {
		return batchValidate
	}
	return cfg.Batch.Validate
}

func init() {
	batchCmd.Flags().StringVar(&batchInputDir, "input", "", "input directory (required)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "output directory (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker count (default: from config, then NumCPU)")
	batchCmd.Flags().BoolVar(&batchValidate, "validate", false, "validate records against the output schema (overrides config)")
	_ = batchCmd.MarkFlagRequired("input")
	_ = batchCmd.MarkFlagRequired("output-dir")
}
