package hypothesis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// PairwiseComparison reports a one-tailed multiple comparison between two
// sample populations after a significant Kruskal-Wallis test. Better and
// Worse are 1-based population indexes in input order.
type PairwiseComparison struct {
	Better    int
	Worse     int
	Statistic float64
	PValue    float64
}

// KruskalResult is the outcome of a Kruskal-Wallis test over k independent
// sample populations.
type KruskalResult struct {
	Statistic   float64 // tie-corrected T, Conover (1999) eq. 3 p. 289
	PValue      float64 // chi-square survival with k-1 degrees of freedom
	Significant bool
	Pairwise    []PairwiseComparison // populated only when Significant
}

// KruskalWallis runs the nonparametric test for differences between
// multiple independent samples as described in Conover (1999), "Practical
// Nonparametric Statistics", 3rd edition. When the overall null hypothesis
// is rejected at the given alpha, one-tailed pairwise comparisons (eq. 6,
// p. 290) are computed for every ordered pair of populations.
func KruskalWallis(groups [][]float64, alpha float64) (*KruskalResult, error) {
	if len(groups) < 2 {
		return nil, errors.Newf(errors.CodeBadSample, "need at least 2 sample populations, got %d", len(groups))
	}
	for i, g := range groups {
		if len(g) == 0 {
			return nil, errors.Newf(errors.CodeBadSample, "sample population %d is empty", i+1)
		}
	}

	pooled := rankAll(groups)
	n := float64(len(pooled))
	k := len(groups)

	// S^2, eq. 4 p. 289
	correction := n * (n + 1) * (n + 1) / 4
	s2 := (sumSquaredRanks(pooled) - correction) / (n - 1)
	if s2 == 0 {
		// every pooled value identical; nothing distinguishes the samples
		return &KruskalResult{Statistic: 0, PValue: 1}, nil
	}

	sum := 0.0
	rankSums := make([]float64, k)
	for i := range groups {
		rankSums[i] = sumOfRanks(pooled, i)
		sum += rankSums[i] * rankSums[i] / float64(len(groups[i]))
	}
	t := (sum - correction) / s2

	chi := distuv.ChiSquared{K: float64(k - 1)}
	result := &KruskalResult{Statistic: t, PValue: chi.Survival(t)}
	result.Significant = result.PValue <= alpha
	if !result.Significant {
		return result, nil
	}

	// pairwise one-tailed comparisons share the pooled rank variance
	df := n - float64(k)
	scale := math.Sqrt(s2 * (n - 1 - t) / df)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	for i := range groups {
		for j := range groups {
			if i == j {
				continue
			}
			diff := rankSums[i]/float64(len(groups[i])) - rankSums[j]/float64(len(groups[j]))
			stat := diff / (scale * math.Sqrt(1/float64(len(groups[i]))+1/float64(len(groups[j]))))
			result.Pairwise = append(result.Pairwise, PairwiseComparison{
				Better:    j + 1,
				Worse:     i + 1,
				Statistic: stat,
				PValue:    tdist.Survival(stat),
			})
		}
	}
	return result, nil
}

// Render produces the output file content consumed downstream by the
// comparative table's Kruskal-Wallis parser: one line per pairwise
// comparison when the null hypothesis was rejected, the literal H0
// otherwise.
func (r *KruskalResult) Render() string {
	if !r.Significant {
		return "H0\n"
	}
	var sb strings.Builder
	for _, c := range r.Pairwise {
		fmt.Fprintf(&sb, "%d better than %d with a p-value of %g\n", c.Better, c.Worse, c.PValue)
	}
	return sb.String()
}
