package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavojorge/statistical-tests-suit/domain/front"
)

var minMin = []Sense{Minimize, Minimize}

func TestEpsilon_IdenticalSetsIsZero(t *testing.T) {
	ref := front.Front{{0, 1}, {1, 0}}

	eps, err := Epsilon(ref, ref, minMin, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, eps, 1e-12)
}

func TestEpsilon_UniformShift(t *testing.T) {
	ref := front.Front{{0, 1}, {1, 0}}
	run := front.Front{{0.25, 1.25}, {1.25, 0.25}}

	eps, err := Epsilon(ref, run, minMin, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, eps, 1e-12, "a run shifted by 0.25 on every objective needs exactly that shift back")
}

func TestEpsilon_DominatingRunIsNegative(t *testing.T) {
	ref := front.Front{{1, 1}}
	run := front.Front{{0.5, 0.5}}

	eps, err := Epsilon(ref, run, minMin, false)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, eps, 1e-12)
}

func TestEpsilon_MaximizationSense(t *testing.T) {
	// maximizing both objectives: a run below the reference needs a shift
	ref := front.Front{{1, 1}}
	run := front.Front{{0.5, 0.5}}

	eps, err := Epsilon(ref, run, []Sense{Maximize, Maximize}, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, eps, 1e-12)
}

func TestEpsilon_Multiplicative(t *testing.T) {
	ref := front.Front{{1, 2}}
	run := front.Front{{2, 4}}

	eps, err := Epsilon(ref, run, minMin, true)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, eps, 1e-12)
}

func TestEpsilon_MultiplicativeRejectsMixedSigns(t *testing.T) {
	ref := front.Front{{-1, 2}}
	run := front.Front{{1, 2}}

	_, err := Epsilon(ref, run, minMin, true)
	assert.Error(t, err)
}

func TestEpsilon_EmptySets(t *testing.T) {
	_, err := Epsilon(nil, front.Front{{1, 2}}, minMin, false)
	assert.Error(t, err)

	_, err = Epsilon(front.Front{{1, 2}}, nil, minMin, false)
	assert.Error(t, err)
}

func TestParseSenses(t *testing.T) {
	senses, err := ParseSenses("-+")
	require.NoError(t, err)
	assert.Equal(t, []Sense{Minimize, Maximize}, senses)

	_, err = ParseSenses("-x")
	assert.Error(t, err)
}
