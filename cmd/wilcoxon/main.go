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

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cmd := &cobra.Command{
		Use:   "wilcoxon [indicator-file] [output-file]",
		Short: "Pairwise Wilcoxon signed-rank tests over blank-line-separated paired samples",
		Long: `Read a single column of indicator values where blank lines divide the
separate sample populations, pair the populations run-by-run (so all
populations must have the same size), and run the Wilcoxon signed-rank
test (normal approximation) for every ordered pair, writing one line with
the one-tailed p-value per pair. With more than two populations the
p-values share samples across tests and should only be read as exploratory.`,
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
	for i := 1; i < len(groups); i++ {
		if len(groups[i]) != len(groups[0]) {
			return errors.Newf(errors.CodeBadSample, "paired samples must have equal size: population %d has %d values, population 1 has %d", i+1, len(groups[i]), len(groups[0]))
		}
	}

	out, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", outFile)
	}
	w := bufio.NewWriter(out)
	for a := range groups {
		for b := range groups {
			if a == b {
				continue
			}
			result, err := hypothesis.WilcoxonSignedRank(groups[a], groups[b])
			if err != nil {
				out.Close()
				return err
			}
			fmt.Fprintf(w, "%d better than %d with a p-value of %g\n", b+1, a+1, result.PValue)
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
		logger.Warn("multiple tests reuse the same samples; the p-values are exploratory")
	}
	return nil
}
