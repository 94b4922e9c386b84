package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

const sheetName = "Sheet1"

// WriteXLSX writes the comparative table as a single-sheet workbook with
// the same columns and cell text as the CSV output.
func WriteXLSX(path string, table *aggregate.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	headers := toInterfaces(aggregate.Headers())
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return errors.Wrap(err, "failed to write workbook header")
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "failed to compute workbook cell name")
		}
		cells := toInterfaces(row.Cells())
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return errors.Wrapf(err, "failed to write workbook row for %s", row.Instance)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", path)
	}
	return nil
}

func toInterfaces(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
