package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gustavojorge/statistical-tests-suit/internal"
	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
	"github.com/gustavojorge/statistical-tests-suit/internal/config"
)

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	var subdir, patternA, patternB string

	cmd := &cobra.Command{
		Use:   "wincount [analysis-dir]",
		Short: "Count instances where one algorithm's mean indicator beats the other's",
		Long: `For every instance listed in the analysis directory's manifest, locate
the two algorithms' indicator files, average each and count for how many
instances each algorithm's mean is strictly lower. Lower means better for
every indicator the suite produces.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], subdir, patternA, patternB, logger)
		},
	}
	cmd.Flags().StringVar(&subdir, "subdir", "epsilon_additive", "metric subdirectory inside each instance")
	cmd.Flags().StringVar(&patternA, "a", "esp_ad_moead", "filename pattern of the first algorithm's indicator file")
	cmd.Flags().StringVar(&patternB, "b", "esp_ad_nsga2", "filename pattern of the second algorithm's indicator file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(analysisDir, subdir, patternA, patternB string, logger *internal.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	builder := aggregate.NewBuilder(analysisDir, cfg.ManifestName, cfg.Alpha, logger)
	instances, err := builder.ReadManifest()
	if err != nil {
		return err
	}

	winsA, winsB := 0, 0
	for _, instance := range instances {
		meanA := locateMean(analysisDir, instance, subdir, patternA)
		meanB := locateMean(analysisDir, instance, subdir, patternB)
		if math.IsNaN(meanA) || math.IsNaN(meanB) {
			logger.Warn("instance %s skipped: missing or empty indicator file", instance)
			continue
		}
		switch {
		case meanA < meanB:
			logger.Info("instance %s: %s wins (%.6f < %.6f)", instance, patternA, meanA, meanB)
			winsA++
		case meanB < meanA:
			logger.Info("instance %s: %s wins (%.6f < %.6f)", instance, patternB, meanB, meanA)
			winsB++
		default:
			logger.Info("instance %s: tie (%.6f)", instance, meanA)
		}
	}

	fmt.Printf("Instances where %s had the lower mean: %d\n", patternA, winsA)
	fmt.Printf("Instances where %s had the lower mean: %d\n", patternB, winsB)
	return nil
}

func locateMean(analysisDir, instance, subdir, pattern string) float64 {
	path, ok := aggregate.Locate(filepath.Join(analysisDir, instance), subdir, pattern)
	if !ok {
		return math.NaN()
	}
	return aggregate.ReadMean(path).Mean
}
