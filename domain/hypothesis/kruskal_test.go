package hypothesis

import (
	"math"
	"strings"
	"testing"
)

func sequence(start, step float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	return values
}

func TestRankAll_Midranks(t *testing.T) {
	pooled := rankAll([][]float64{{1, 2, 2, 3}})

	want := []float64{1, 2.5, 2.5, 4}
	for i, r := range pooled {
		if r.rank != want[i] {
			t.Errorf("rank[%d] = %g, want %g", i, r.rank, want[i])
		}
	}
}

func TestKruskalWallis_SeparatedGroupsAreSignificant(t *testing.T) {
	groups := [][]float64{
		sequence(0.01, 0.01, 20),
		sequence(1.01, 0.01, 20),
		sequence(2.01, 0.01, 20),
	}

	result, err := KruskalWallis(groups, 0.05)
	if err != nil {
		t.Fatalf("KruskalWallis: %v", err)
	}
	if !result.Significant {
		t.Fatalf("fully separated groups should be significant, got p = %g", result.PValue)
	}
	if len(result.Pairwise) != 6 {
		t.Fatalf("expected 6 ordered pairwise comparisons, got %d", len(result.Pairwise))
	}

	// group 1 has the lowest values: "1 better than 2" must be significant,
	// the reverse direction must not be
	for _, c := range result.Pairwise {
		if c.Better == 1 && c.Worse == 2 && c.PValue > 0.05 {
			t.Errorf("1 better than 2 should be significant, got p = %g", c.PValue)
		}
		if c.Better == 2 && c.Worse == 1 && c.PValue < 0.5 {
			t.Errorf("2 better than 1 should not be significant, got p = %g", c.PValue)
		}
	}
}

func TestKruskalWallis_EqualDistributionsAcceptH0(t *testing.T) {
	groups := [][]float64{
		sequence(1, 1, 20),
		sequence(1, 1, 20),
	}

	result, err := KruskalWallis(groups, 0.05)
	if err != nil {
		t.Fatalf("KruskalWallis: %v", err)
	}
	if result.Significant {
		t.Errorf("identical distributions should accept H0, got p = %g", result.PValue)
	}
	if result.Render() != "H0\n" {
		t.Errorf("Render() = %q, want H0", result.Render())
	}
}

func TestKruskalWallis_AllValuesIdentical(t *testing.T) {
	groups := [][]float64{{5, 5, 5}, {5, 5, 5}}

	result, err := KruskalWallis(groups, 0.05)
	if err != nil {
		t.Fatalf("KruskalWallis: %v", err)
	}
	if result.Significant || result.PValue != 1 {
		t.Errorf("degenerate input should accept H0 with p = 1, got p = %g", result.PValue)
	}
}

func TestKruskalWallis_InputValidation(t *testing.T) {
	if _, err := KruskalWallis([][]float64{{1, 2}}, 0.05); err == nil {
		t.Error("expected error for a single population")
	}
	if _, err := KruskalWallis([][]float64{{1, 2}, {}}, 0.05); err == nil {
		t.Error("expected error for an empty population")
	}
}

func TestKruskalResult_RenderLines(t *testing.T) {
	result := &KruskalResult{
		Significant: true,
		Pairwise: []PairwiseComparison{
			{Better: 1, Worse: 2, PValue: 0.003},
			{Better: 2, Worse: 1, PValue: 0.9},
		},
	}

	rendered := result.Render()
	if !strings.Contains(rendered, "1 better than 2 with a p-value of 0.003") {
		t.Errorf("unexpected render output:\n%s", rendered)
	}
	if len(strings.Split(strings.TrimSpace(rendered), "\n")) != 2 {
		t.Errorf("expected 2 lines, got:\n%s", rendered)
	}
}

func TestKruskalWallis_PValueBounds(t *testing.T) {
	groups := [][]float64{
		sequence(0.5, 0.013, 25),
		sequence(0.4, 0.017, 25),
	}

	result, err := KruskalWallis(groups, 0.05)
	if err != nil {
		t.Fatalf("KruskalWallis: %v", err)
	}
	if result.PValue < 0 || result.PValue > 1 || math.IsNaN(result.PValue) {
		t.Errorf("p-value out of range: %g", result.PValue)
	}
}
