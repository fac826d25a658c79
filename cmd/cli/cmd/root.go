// Package cmd provides the CLI commands for parse-electriflex-gloves-skus.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"electriflex-sku/internal/config"
	"electriflex-sku/internal/errors"
	"electriflex-sku/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

const programName = "parse-electriflex-gloves-skus"

// options holds the flag values of one command tree
type options struct {
	cfgFile    string
	verbose    bool
	quiet      bool
	noColor    bool
	logFile    string
	skuColumn  string
	outputFile string
	format     string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   programName + " INPUTFILE",
		Short: "Parse Electriflex glove SKUs into attribute columns",
		Long: `Parse Electriflex glove SKUs into attributes.

Takes a UTF-8 CSV file with a SKU column and writes a CSV with the same
columns plus the attributes decoded from each SKU:

  Class       voltage class
  Length      glove length
  Length UOM  length unit of measure (inch)
  Cuff Style  Straight, Bell, Contour or Contour Bell Cuff
  Color       glove color
  Size        glove size
  RFID        Yes when the SKU carries the RF marker
  EXTRA       any trailing information

Only Electriflex glove SKUs such as NG216YB/9, NG216BCRB/10H,
NG418CRB/12/CLIF or NG216BCBYB/10/RF are understood. Rows whose SKU cannot
be decoded are still written, with blank attribute columns.

An input file named like a subcommand (decode, version, config) must be
given as ./decode or after "--", otherwise the subcommand runs.

Examples:
  parse-electriflex-gloves-skus input.csv
  parse-electriflex-gloves-skus input.csv --sku-column-name SKU_CODE
  parse-electriflex-gloves-skus input.csv -scn SKU_CODE -o parsed_output.csv
  parse-electriflex-gloves-skus -o parsed_output.csv -- decode`,
		Version:           Version,
		Args:              usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.initConfig,
		RunE:              o.runParse,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Usage(err.Error())
	})

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "only print errors")
	rootCmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&o.logFile, "log-file", logging.DefaultLogFile, "append logs to this file (empty disables)")

	rootCmd.Flags().BoolP("version", "V", false, "print the version and exit")
	rootCmd.Flags().StringVar(&o.skuColumn, "sku-column-name", "SKU", "name of the SKU column in the CSV file (short: -scn)")
	rootCmd.Flags().StringVarP(&o.outputFile, "output-file", "o", "output.csv", "name of the output file")

	rootCmd.AddCommand(newDecodeCmd(o))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the CLI with the process arguments and returns the exit code
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command tree with explicit arguments and streams
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	logging.Sync()

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.IsType(err, errors.TypeUsage) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", programName)
		}
	}
	return errors.ExitCode(err)
}

// normalizeArgs rewrites the multi-letter short flag -scn, which pflag
// cannot declare, into its long form.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		switch {
		case arg == "-scn":
			arg = "--sku-column-name"
		case strings.HasPrefix(arg, "-scn="):
			arg = "--sku-column-name=" + strings.TrimPrefix(arg, "-scn=")
		}
		out = append(out, arg)
	}
	return out
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.Usage(err.Error())
		}
		return nil
	}
}

// initConfig loads the config file, applies explicitly set flags on top of
// it and initializes logging
func (o *options) initConfig(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if o.cfgFile != "" {
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("sku-column-name") {
		cfg.Pipeline.SKUColumn = o.skuColumn
	}
	if flags.Changed("output-file") {
		cfg.Pipeline.OutputFile = o.outputFile
	}
	if flags.Changed("format") {
		cfg.Output.DefaultFormat = o.format
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = o.logFile
	}
	if o.noColor {
		cfg.Output.NoColor = true
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	if o.quiet {
		cfg.Logging.Output = "none"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return errors.Config("initializing logging", err)
	}
	return nil
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", programName, Version)
		},
	}
}
