package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

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

	cmd := &cobra.Command{
		Use:   "igd [data-file] [reference-set] [output-file]",
		Short: "Compute the inverted generational distance of each execution against a reference front",
		Long: `Read a reference Pareto front and a multi-execution solution file
(blank-line-delimited blocks of points), compute the IGD indicator value of
each execution against the reference front, and write one value per line to
the output file, in block order.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], args[2], dim, logger)
		},
	}
	cmd.Flags().IntVar(&dim, "dim", 2, "number of objectives per point")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dataFile, refFile, outFile string, dim int, logger *internal.Logger) error {
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
	logger.Info("computing IGD for %d executions against %d reference points", len(executions), len(ref))

	out, err := os.Create(outFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", outFile)
	}
	w := bufio.NewWriter(out)
	for _, exec := range executions {
		v := indicator.IGD(ref, exec)
		fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
	}
	// trailing blank line: one execution block per value downstream
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to write %s", outFile)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", outFile)
	}
	return nil
}
