package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
)

func sampleTable() *aggregate.Table {
	means := make([]aggregate.MeanResult, 9)
	for i := range means {
		means[i] = aggregate.MeanResult{Mean: 0.5, Used: 10}
	}
	missing := make([]aggregate.MeanResult, 9)
	for i := range missing {
		missing[i] = aggregate.MeanResult{Mean: math.NaN()}
	}
	return &aggregate.Table{
		Rows: []*aggregate.Row{
			{Instance: "A", Means: means, Kruskal: []string{"H0", "H0", "N/A"}},
			{Instance: "B", Means: missing, Kruskal: []string{"N/A", "N/A", "N/A"}},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparative_results.csv")
	require.NoError(t, WriteCSV(path, sampleTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "Instance,HV_MOEA_D,HV_COMOLS_D,HV_NSGA2," +
		"EPS_MOEA_D,EPS_COMOLS_D,EPS_NSGA2," +
		"IGD_MOAE_D,IGD_COMOLS_D,IGD_NSGA2," +
		"Kruskal Wallis Test (HV),Kruskal Wallis Test (EPS),Kruskal Wallis Test (IGD)\n" +
		"A,0.5000,0.5000,0.5000,0.5000,0.5000,0.5000,0.5000,0.5000,0.5000,H0,H0,N/A\n" +
		"B,nan,nan,nan,nan,nan,nan,nan,nan,nan,N/A,N/A,N/A\n"
	assert.Equal(t, want, string(data))
}

func TestWriteCSV_Idempotent(t *testing.T) {
	dir := t.TempDir()
	table := sampleTable()

	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	require.NoError(t, WriteCSV(first, table))
	require.NoError(t, WriteCSV(second, table))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "rerunning over unchanged input produces identical bytes")
}
