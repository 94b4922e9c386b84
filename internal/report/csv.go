package report

import (
	"encoding/csv"
	"os"

	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// WriteCSV writes the comparative table as CSV. Rows are emitted in table
// order, so rerunning over unchanged inputs produces identical bytes.
func WriteCSV(path string, table *aggregate.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	w := csv.NewWriter(f)
	if err := w.Write(aggregate.Headers()); err != nil {
		f.Close()
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, row := range table.Rows {
		if err := w.Write(row.Cells()); err != nil {
			f.Close()
			return errors.Wrapf(err, "failed to write CSV row for %s", row.Instance)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to flush %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}
