package main

import (
	"fmt"
	"os"

	"gotrends/internal"
	"gotrends/internal/config"
	"gotrends/internal/pipeline"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataFile string
		outDir   string
		column   string
		bins     int
		html     string
	)

	cmd := &cobra.Command{
		Use:   "gotrends",
		Short: "Descriptive statistics, moments and plots for one tabular dataset",
		Long: `Load a CSV (or .xlsx) dataset, report its shape, summary statistics, missing
values and correlation matrix, drop incomplete rows, save relational, categorical
and statistical plots as PNG files, and describe the distribution of one numeric
column by its mean, standard deviation, skewness and excess kurtosis.

Defaults come from the environment (and a .env file):
- DATA_FILE (default: data.csv)
- OUTPUT_DIR (default: .)
- TARGET_COLUMN (default: first numeric column)
- HIST_BINS (default: 20)
- HTML_REPORT (default: none)
- LOG_LEVEL (default: INFO)

Example: gotrends --data sales.csv --column revenue --html report.html`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("data") {
				cfg.Data.File = dataFile
			}
			if flags.Changed("out-dir") {
				cfg.Output.Dir = outDir
			}
			if flags.Changed("column") {
				cfg.Data.TargetColumn = column
			}
			if flags.Changed("bins") {
				cfg.Plot.HistogramBins = bins
			}
			if flags.Changed("html") {
				cfg.Output.HTMLReport = html
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := internal.DefaultLogger
			logger.SetLevel(internal.ParseLogLevel(cfg.Log.Level))

			_, err = pipeline.NewRunner(cfg, cmd.OutOrStdout(), logger).Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "data.csv", "Dataset file (.csv or .xlsx)")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Existing directory the PNG files are written to")
	cmd.Flags().StringVar(&column, "column", "", "Numeric column to analyse (default: first numeric column)")
	cmd.Flags().IntVar(&bins, "bins", 20, "Histogram bin count")
	cmd.Flags().StringVar(&html, "html", "", "Also write an interactive HTML report to this path")

	return cmd
}
