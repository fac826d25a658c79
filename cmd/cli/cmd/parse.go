// Package cmd - CSV parsing, the root command's action
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"electriflex-sku/core/pipeline"
	"electriflex-sku/core/ui"
	"electriflex-sku/internal/config"
	"electriflex-sku/internal/logging"
)

func (o *options) runParse(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	inputFile := args[0]
	runID := uuid.NewString()

	logging.Info("Starting...", zap.String("run_id", runID), zap.String("version", Version))

	stats, err := pipeline.ProcessFile(cmd.Context(), inputFile, pipeline.Options{
		SKUColumn:  cfg.Pipeline.SKUColumn,
		OutputFile: cfg.Pipeline.OutputFile,
		RunID:      runID,
	})
	if err != nil {
		logging.Error("parsing failed", zap.String("run_id", runID), zap.Error(err))
		return err
	}

	w := ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor)
	if o.quiet {
		w.SetVerbosity(0)
	}

	summary := w.NewRunSummary()
	summary.Input = filepath.ToSlash(inputFile)
	summary.Output = filepath.ToSlash(cfg.Pipeline.OutputFile)
	summary.Column = stats.Column
	summary.Rows = stats.Rows
	summary.Decoded = stats.Decoded
	summary.Failed = stats.Failed
	summary.Blank = stats.Blank
	summary.SuccessRate = stats.SuccessRate().String()
	summary.Duration = stats.Duration
	for _, f := range stats.Failures {
		summary.Failures = append(summary.Failures, fmt.Sprintf("line %d: %s", f.Line, f.SKU))
	}
	summary.Render()

	logging.Info("Finished.", zap.String("run_id", runID))
	return nil
}
