package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
)

func TestRunSummary_RoundTrip(t *testing.T) {
	table := sampleTable()
	table.Failures = []aggregate.Failure{{Instance: "ghost", Reason: "instance directory not found"}}
	table.SkippedLines = map[string]int{"inst/hypervolume/HV_moead.out": 2}

	summary := NewRunSummary(table, 3)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 3, summary.Instances)
	assert.Equal(t, 2, summary.Rows)

	path := filepath.Join(t.TempDir(), "run.summary.json")
	require.NoError(t, WriteSummary(path, summary))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded RunSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, summary.RunID, decoded.RunID)
	require.Len(t, decoded.Failures, 1)
	assert.Equal(t, "ghost", decoded.Failures[0].Instance)
	assert.Equal(t, 2, decoded.SkippedLines["inst/hypervolume/HV_moead.out"])
}
