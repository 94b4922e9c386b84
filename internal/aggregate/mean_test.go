package aggregate

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetric(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metric.out")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMean_Arithmetic(t *testing.T) {
	path := writeMetric(t, "1.0\n2.0\n3.0\n")

	result := ReadMean(path)
	assert.Equal(t, 2.0, result.Mean)
	assert.Equal(t, 3, result.Used)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, "2.0000", FormatMean(result.Mean))
}

func TestReadMean_BlankLinesIgnored(t *testing.T) {
	path := writeMetric(t, "1.0\n\n3.0\n\n")

	result := ReadMean(path)
	assert.Equal(t, 2.0, result.Mean)
	assert.Equal(t, 2, result.Used)
}

func TestReadMean_SkipsUnparseableLines(t *testing.T) {
	path := writeMetric(t, "1.0\nbogus\n3.0\n")

	result := ReadMean(path)
	assert.Equal(t, 2.0, result.Mean)
	assert.Equal(t, 1, result.Skipped)
}

func TestReadMean_MissingFile(t *testing.T) {
	result := ReadMean(filepath.Join(t.TempDir(), "absent.out"))
	assert.True(t, math.IsNaN(result.Mean))

	result = ReadMean("")
	assert.True(t, math.IsNaN(result.Mean))
}

func TestReadMean_NoParseableLines(t *testing.T) {
	path := writeMetric(t, "alpha\nbeta\n")

	result := ReadMean(path)
	assert.True(t, math.IsNaN(result.Mean))
	assert.Equal(t, 2, result.Skipped)
}

func TestFormatMean(t *testing.T) {
	assert.Equal(t, "0.1235", FormatMean(0.12345))
	assert.Equal(t, "nan", FormatMean(math.NaN()))
}
