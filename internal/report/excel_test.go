package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comparative_results.xlsx")
	require.NoError(t, WriteXLSX(path, sampleTable()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Instance", header)

	instance, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "A", instance)

	mean, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "0.5000", mean)

	kruskal, err := f.GetCellValue(sheetName, "L3")
	require.NoError(t, err)
	assert.Equal(t, "N/A", kruskal)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3, "header plus one row per instance")
}
