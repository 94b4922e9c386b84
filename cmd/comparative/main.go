package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gustavojorge/statistical-tests-suit/internal"
	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
	"github.com/gustavojorge/statistical-tests-suit/internal/config"
	"github.com/gustavojorge/statistical-tests-suit/internal/report"
)

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	var writeXLSX bool
	var writeSummary bool

	cmd := &cobra.Command{
		Use:   "comparative [analysis-dir]",
		Short: "Aggregate per-instance indicator files into a comparative results table",
		Long: `Scan an analysis directory containing one subdirectory per problem
instance, average each instance's hypervolume, epsilon-additive and IGD
metric files per algorithm, flag significant Kruskal-Wallis comparisons,
and write comparative_results.csv beside the analysis directory.

The instances to process are listed in <analysis-dir>/processed_instances.txt,
one directory name per line.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], writeXLSX, writeSummary, logger)
		},
	}
	cmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "also write the table as an .xlsx workbook")
	cmd.Flags().BoolVar(&writeSummary, "summary", false, "also write a JSON run summary with failures and skipped-line counts")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(analysisDir string, writeXLSX, writeSummary bool, logger *internal.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	builder := aggregate.NewBuilder(analysisDir, cfg.ManifestName, cfg.Alpha, logger)
	instances, err := builder.ReadManifest()
	if err != nil {
		return err
	}

	table := builder.Build(instances)
	if len(table.Rows) == 0 {
		logger.Warn("no instances produced results; nothing written")
		return nil
	}

	outDir := filepath.Dir(filepath.Clean(analysisDir))
	csvPath := filepath.Join(outDir, cfg.CSVName)
	if err := report.WriteCSV(csvPath, table); err != nil {
		return err
	}
	logger.Info("wrote %s (%d of %d instances)", csvPath, len(table.Rows), len(instances))

	if writeXLSX {
		xlsxPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".xlsx"
		if err := report.WriteXLSX(xlsxPath, table); err != nil {
			return err
		}
		logger.Info("wrote %s", xlsxPath)
	}
	if writeSummary {
		summaryPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".summary.json"
		if err := report.WriteSummary(summaryPath, report.NewRunSummary(table, len(instances))); err != nil {
			return err
		}
		logger.Info("wrote %s", summaryPath)
	}
	return nil
}
