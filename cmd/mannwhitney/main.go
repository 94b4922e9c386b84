package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gustavojorge/statistical-tests-suit/domain/front"
	"github.com/gustavojorge/statistical-tests-suit/domain/hypothesis"
	"github.com/gustavojorge/statistical-tests-suit/internal"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

const smallSampleSize = 20

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cmd := &cobra.Command{
		Use:   "mannwhitney [indicator-file] [output-file]",
		Short: "Pairwise Mann-Whitney rank-sum tests over blank-line-separated sample populations",
		Long: `Read a single column of indicator values where blank lines divide the
separate sample populations and run the Mann-Whitney rank-sum test (normal
approximation) for every ordered pair of populations, writing one line with
the one-tailed p-value per pair. With more than two populations the
p-values share samples across tests and should only be read as exploratory;
prefer the kruskal command in that case.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], logger)
		},
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(indicatorFile, outFile string, logger *internal.Logger) error {
	if _, err := os.Stat(indicatorFile); err != nil {
		return errors.Newf(errors.CodeInputMissing, "indicator file not found: %s", indicatorFile)
	}

	groups, err := front.ReadGroups(indicatorFile)
	if err != nil {
		return err
	}
	if len(groups) < 2 {
		return errors.Newf(errors.CodeBadSample, "need at least 2 sample populations, got %d", len(groups))
	}
	for i, g := range groups {
		if len(g) < smallSampleSize {
			logger.Warn("sample population %d has only %d values; p-values are approximate without a small-sample correction", i+1, len(g))
		}
	}

	out, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", outFile)
	}
	w := bufio.NewWriter(out)
	for j := range groups {
		for k := range groups {
			if j == k {
				continue
			}
			result, err := hypothesis.MannWhitney(groups[j], groups[k])
			if err != nil {
				out.Close()
				return err
			}
			fmt.Fprintf(w, "%d better than %d with a p-value of %.9g\n", k+1, j+1, result.PValue)
		}
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to write %s", outFile)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", outFile)
	}
	if len(groups) > 2 {
		logger.Warn("multiple tests reuse the same samples; the p-values are exploratory, consider the Kruskal-Wallis test")
	}
	return nil
}
