package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gustavojorge/statistical-tests-suit/domain/front"
	"github.com/gustavojorge/statistical-tests-suit/domain/hypothesis"
	"github.com/gustavojorge/statistical-tests-suit/internal"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// smallSampleSize is the sample size below which the uncorrected
// Kruskal-Wallis p-values are only approximate.
const smallSampleSize = 20

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	var alpha float64

	cmd := &cobra.Command{
		Use:   "kruskal [indicator-file] [output-file]",
		Short: "Kruskal-Wallis test over blank-line-separated sample populations",
		Long: `Read a single column of indicator values where blank lines divide the
separate sample populations and run the Kruskal-Wallis test. If the null
hypothesis of identical distributions is rejected at the given alpha, the
output file gets one line per ordered pair of populations with the
one-tailed p-value of the pairwise comparison; otherwise it gets the
literal H0.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], alpha, logger)
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "significance level, must be in (0, 0.1]")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(indicatorFile, outFile string, alpha float64, logger *internal.Logger) error {
	if alpha <= 0 || alpha > 0.1 {
		return errors.New(errors.CodeConfigInvalid, "the significance alpha must be in (0, 0.1]")
	}
	if _, err := os.Stat(indicatorFile); err != nil {
		return errors.Newf(errors.CodeInputMissing, "indicator file not found: %s", indicatorFile)
	}

	groups, err := front.ReadGroups(indicatorFile)
	if err != nil {
		return err
	}
	total := 0
	for i, g := range groups {
		total += len(g)
		if len(g) < smallSampleSize {
			logger.Warn("sample population %d has only %d values; p-values are approximate without a small-sample correction", i+1, len(g))
		}
	}
	logger.Info("%d sample populations, %d values in total", len(groups), total)

	result, err := hypothesis.KruskalWallis(groups, alpha)
	if err != nil {
		return err
	}
	logger.Debug("corrected T = %g, overall p = %g", result.Statistic, result.PValue)

	if err := os.WriteFile(outFile, []byte(result.Render()), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", outFile)
	}
	return nil
}
