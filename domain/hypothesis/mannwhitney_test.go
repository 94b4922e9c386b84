package hypothesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMannWhitney_SeparatedSamples(t *testing.T) {
	low := sequence(0.01, 0.01, 20)
	high := sequence(1.01, 0.01, 20)

	// statistic is computed on the first sample's ranks; the one-tailed
	// p-value is small when the second sample has the smaller values
	result, err := MannWhitney(high, low)
	require.NoError(t, err)
	assert.Less(t, result.PValue, 0.001, "low better than high should be significant")

	result, err = MannWhitney(low, high)
	require.NoError(t, err)
	assert.Greater(t, result.PValue, 0.5, "high better than low should not be significant")
}

func TestMannWhitney_IdenticalSamples(t *testing.T) {
	sample := sequence(1, 1, 20)

	result, err := MannWhitney(sample, sample)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.PValue, 1e-9)
	assert.Zero(t, result.Statistic)
}

func TestMannWhitney_EmptySample(t *testing.T) {
	_, err := MannWhitney(nil, []float64{1, 2})
	assert.Error(t, err)
}

func TestWilcoxonSignedRank_ShiftedPairs(t *testing.T) {
	a := sequence(1, 1, 20)
	b := make([]float64, len(a))
	for i, v := range a {
		b[i] = v + 1
	}

	// b's values are uniformly larger (worse): "b better than a" is rejected
	result, err := WilcoxonSignedRank(a, b)
	require.NoError(t, err)
	assert.Greater(t, result.PValue, 0.5)

	// the other direction is strongly supported
	result, err = WilcoxonSignedRank(b, a)
	require.NoError(t, err)
	assert.Less(t, result.PValue, 0.001)
}

func TestWilcoxonSignedRank_InputValidation(t *testing.T) {
	_, err := WilcoxonSignedRank([]float64{1, 2}, []float64{1})
	assert.Error(t, err, "unequal sample sizes")

	same := sequence(1, 1, 10)
	_, err = WilcoxonSignedRank(same, same)
	assert.Error(t, err, "all differences zero leaves nothing to rank")
}
