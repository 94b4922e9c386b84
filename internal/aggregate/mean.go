package aggregate

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// MeanResult is the outcome of averaging one metric file. Mean is NaN when
// the file is absent or holds no parseable values. Skipped counts the
// non-blank lines that did not parse as a float.
type MeanResult struct {
	Mean    float64
	Used    int
	Skipped int
}

// ReadMean computes the arithmetic mean of the non-blank lines of a metric
// file parsed as floats. Unparseable lines are skipped and counted rather
// than failing the file. An empty path stands for "file was never located".
func ReadMean(path string) MeanResult {
	result := MeanResult{Mean: math.NaN()}
	if path == "" {
		return result
	}

	f, err := os.Open(path)
	if err != nil {
		return result
	}
	defer f.Close()

	var values []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			result.Skipped++
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return result
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return result
	}
	result.Mean = mean
	result.Used = len(values)
	return result
}
