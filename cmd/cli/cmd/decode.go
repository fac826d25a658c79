// Package cmd - decode command
package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"electriflex-sku/core/output"
	"electriflex-sku/internal/config"
	"electriflex-sku/internal/errors"
	"electriflex-sku/internal/logging"
)

func newDecodeCmd(o *options) *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode [SKU...]",
		Short: "Decode SKUs given as arguments or read from stdin",
		Long: `Decode one or more Electriflex glove SKUs without a CSV file.

SKUs are taken from the arguments, or one per line from stdin when no
arguments are given. Exits non-zero if any SKU cannot be decoded.

Examples:
  parse-electriflex-gloves-skus decode NG216YB/9 NG418CRB/12/RF
  parse-electriflex-gloves-skus decode --format json NG218CBCRB/11/CLIF
  cut -d, -f2 input.csv | parse-electriflex-gloves-skus decode --format csv`,
		RunE: o.runDecode,
	}

	decodeCmd.Flags().StringVarP(&o.format, "format", "f", "cli", "output format (cli, json, csv)")
	return decodeCmd
}

func (o *options) runDecode(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	formatter, err := output.NewRegistry(cfg.Output.NoColor).Get(output.Format(cfg.Output.DefaultFormat))
	if err != nil {
		return err
	}

	skus := args
	if len(skus) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				skus = append(skus, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return errors.IO("reading SKUs from stdin", err)
		}
		if len(skus) == 0 {
			return errors.Usage("no SKUs given")
		}
	}

	results := output.DecodeAll(skus)
	if err := formatter.Render(cmd.OutOrStdout(), results); err != nil {
		return errors.IO("rendering results", err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	logging.Debug("decoded SKUs", zap.Int("count", len(results)), zap.Int("failed", failed))
	if failed > 0 {
		return errors.Newf(errors.TypeParsing, "%d of %d SKUs could not be decoded", failed, len(results))
	}
	return nil
}
