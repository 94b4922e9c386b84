package hypothesis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// WilcoxonSignedRank runs the paired signed-rank test using the normal
// approximation of Conover (1999) eq. 7/8 p. 354. Differences are taken as
// b[i]-a[i]; zero differences are discarded. The returned p-value is
// one-tailed: a small value supports that the b values are smaller than
// (better than, when minimizing) their paired a values.
func WilcoxonSignedRank(a, b []float64) (PairResult, error) {
	if len(a) != len(b) {
		return PairResult{}, errors.Newf(errors.CodeBadSample, "paired samples differ in size: %d vs %d", len(a), len(b))
	}

	var diffs []float64
	for i := range a {
		if d := b[i] - a[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	if len(diffs) < 4 {
		return PairResult{}, errors.Newf(errors.CodeBadSample, "need at least 4 non-zero paired differences, got %d", len(diffs))
	}

	sort.Slice(diffs, func(i, j int) bool { return math.Abs(diffs[i]) < math.Abs(diffs[j]) })

	signedRanks := make([]float64, len(diffs))
	i := 0
	for i < len(diffs) {
		j := i
		for j < len(diffs) && math.Abs(diffs[j]) == math.Abs(diffs[i]) {
			j++
		}
		mid := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			signedRanks[k] = math.Copysign(mid, diffs[k])
		}
		i = j
	}

	var sum, sumSq float64
	for _, r := range signedRanks {
		sum += r
		sumSq += r * r
	}

	stat := (sum - 1) / math.Sqrt(sumSq)
	return PairResult{Statistic: stat, PValue: distuv.UnitNormal.CDF(stat)}, nil
}
