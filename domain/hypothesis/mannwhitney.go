package hypothesis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// PairResult is the outcome of a two-sample test.
type PairResult struct {
	Statistic float64
	PValue    float64 // one-tailed
}

// MannWhitney runs the two-sample rank-sum test with the tie-corrected
// statistic of Conover (1999) eq. 2 p. 273 and a standard normal
// approximation. The returned p-value is the one-tailed probability that
// sample a ranks as high as observed under the null hypothesis; a small
// value means b stochastically dominates (is better than, when minimizing)
// a.
func MannWhitney(a, b []float64) (PairResult, error) {
	if len(a) == 0 || len(b) == 0 {
		return PairResult{}, errors.New(errors.CodeBadSample, "both samples must be non-empty")
	}

	pooled := rankAll([][]float64{a, b})
	n := float64(len(a))
	m := float64(len(b))
	total := n + m

	t1 := sumOfRanks(pooled, 0) - n*(total+1)/2
	if t1 == 0 {
		return PairResult{Statistic: 0, PValue: distuv.UnitNormal.Survival(0)}, nil
	}
	denom := n*m/(total*(total-1))*sumSquaredRanks(pooled) - n*m*(total+1)*(total+1)/(4*(total-1))
	stat := t1 / math.Sqrt(denom)
	return PairResult{Statistic: stat, PValue: distuv.UnitNormal.Survival(stat)}, nil
}
