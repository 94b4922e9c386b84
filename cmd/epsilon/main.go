package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gustavojorge/statistical-tests-suit/domain/front"
	"github.com/gustavojorge/statistical-tests-suit/domain/indicator"
	"github.com/gustavojorge/statistical-tests-suit/internal"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	var dim int
	var obj string
	var multiplicative bool

	cmd := &cobra.Command{
		Use:   "epsilon [data-file] [reference-set] [output-file]",
		Short: "Compute the unary epsilon indicator of each execution against a reference set",
		Long: `Read a reference set and a multi-execution solution file
(blank-line-delimited blocks of points) and write one epsilon indicator
value per execution to the output file. By default the additive indicator
is computed with every objective minimized; --obj takes one '-' or '+' per
objective and --multiplicative switches to the multiplicative variant.
Lower values mean better approximation sets regardless of senses.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if obj == "" {
				obj = strings.Repeat("-", dim)
			}
			senses, err := indicator.ParseSenses(obj)
			if err != nil {
				return err
			}
			if len(senses) != dim {
				return errors.Newf(errors.CodeConfigInvalid, "--obj must give one sense per objective (%d)", dim)
			}
			return run(args[0], args[1], args[2], dim, senses, multiplicative, logger)
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 2, "number of objectives per point")
	cmd.Flags().StringVar(&obj, "obj", "", "objective senses, one '-' (minimize) or '+' (maximize) per objective")
	cmd.Flags().BoolVar(&multiplicative, "multiplicative", false, "compute the multiplicative instead of the additive indicator")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dataFile, refFile, outFile string, dim int, senses []indicator.Sense, multiplicative bool, logger *internal.Logger) error {
	if _, err := os.Stat(dataFile); err != nil {
		return errors.Newf(errors.CodeInputMissing, "data file not found: %s", dataFile)
	}
	if _, err := os.Stat(refFile); err != nil {
		return errors.Newf(errors.CodeInputMissing, "reference file not found: %s", refFile)
	}

	ref, skipped, err := front.ReadFront(refFile, dim)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Warn("skipped %d unparseable lines in %s", skipped, refFile)
	}
	executions, err := front.ReadExecutions(dataFile, dim)
	if err != nil {
		return err
	}
	logger.Info("computing epsilon for %d executions against %d reference points", len(executions), len(ref))

	out, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", outFile)
	}
	w := bufio.NewWriter(out)
	for i, exec := range executions {
		v, err := indicator.Epsilon(ref, exec, senses, multiplicative)
		if err != nil {
			out.Close()
			return errors.Wrapf(err, "execution %d", i+1)
		}
		fmt.Fprintf(w, "%.9e\n", v)
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to write %s", outFile)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", outFile)
	}
	return nil
}
