package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"csvlens/adapters/csvfile"
	"csvlens/adapters/isoforest"
	"csvlens/app"
	"csvlens/internal"
	"csvlens/internal/config"
	"csvlens/internal/sandbox"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "csvlens",
		Short: "CSV exploration, data-quality reporting, and missing-data remediation",
		Long: `csvlens analyzes CSV datasets confined to a sandbox directory: schema and
missing-value summaries, descriptive statistics, correlation matrices,
outlier detection, categorical profiling, quality reports, and
missing-data remediation. Set DATA_ROOT to the sandbox directory.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newListCmd(),
		newPreviewCmd(),
		newColumnInfoCmd(),
		newMissingCmd(),
		newDescribeCmd(),
		newCorrelateCmd(),
		newOutliersCmd(),
		newCategoricalCmd(),
		newQualityCmd(),
		newRemediateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newService builds the fully wired analysis service from the environment
func newService() (*app.AnalysisService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	resolver, err := sandbox.NewResolver(cfg.Paths.DataRoot)
	if err != nil {
		return nil, err
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level))
	scorer := isoforest.NewForest(cfg.Analysis.Contamination, cfg.Analysis.ForestSeed)

	return app.NewAnalysisService(resolver, csvfile.NewReader(), scorer, logger, cfg.Analysis.PreviewRows), nil
}

// printJSON renders any result record as indented JSON on stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List CSV datasets under the data root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.ListDatasets()
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newPreviewCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview [dataset]",
		Short: "Show the first rows of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.Preview(args[0], rows)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows to show (0 uses the configured default)")
	return cmd
}

func newColumnInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "column-info [dataset]",
		Short: "Summarize column dtypes and null counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.ColumnInfo(args[0])
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missing [dataset]",
		Short: "Report missing-value counts and ratios per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.MissingValues(args[0])
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [dataset]",
		Short: "Compute descriptive statistics per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.Describe(args[0])
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newCorrelateCmd() *cobra.Command {
	var method string
	var columns []string

	cmd := &cobra.Command{
		Use:   "correlate [dataset]",
		Short: "Compute a correlation matrix over numeric columns",
		Long: `Compute pairwise correlations over numeric columns using pearson,
spearman, or kendall. Without --columns every numeric column is used.

Example: csvlens correlate sales.csv --method spearman --columns price,units`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.CorrelationMatrix(args[0], columns, method)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&method, "method", "pearson", "Correlation method: pearson, spearman, or kendall")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Numeric columns to correlate (default: all)")
	return cmd
}

func newOutliersCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "outliers [dataset] [column]",
		Short: "Detect outliers in a numeric column",
		Long: `Detect outliers using iqr, zscore, or isolation_forest.

Example: csvlens outliers sales.csv price --method iqr`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.DetectOutliers(args[0], args[1], method)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&method, "method", "iqr", "Detection method: iqr, zscore, or isolation_forest")
	return cmd
}

func newCategoricalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categorical [dataset] [column]",
		Short: "Profile the value distribution of a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.AnalyzeCategorical(args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newQualityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quality [dataset]",
		Short: "Build the aggregate data-quality report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.DataQualityReport(args[0])
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}
}

func newRemediateCmd() *cobra.Command {
	var strategy string
	var columns []string

	cmd := &cobra.Command{
		Use:   "remediate [dataset]",
		Short: "Apply a missing-data strategy and report the changes",
		Long: `Apply drop, mean, median, mode, or fill_zero to columns with missing
values. The source file is never modified; the result includes the
processed shape and a preview.

Example: csvlens remediate sales.csv --strategy mean --columns price,units`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			out, err := svc.HandleMissingData(args[0], strategy, columns)
			if err != nil {
				return err
			}
			return printJSON(out)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "drop", "Strategy: drop, mean, median, mode, or fill_zero")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to remediate (default: all)")
	return cmd
}
