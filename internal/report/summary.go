package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/gustavojorge/statistical-tests-suit/internal/aggregate"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// RunSummary captures what an aggregation run produced and what it had to
// drop, so failures are auditable after the fact rather than only visible
// in console output.
type RunSummary struct {
	RunID        string              `json:"run_id"`
	GeneratedAt  time.Time           `json:"generated_at"`
	Instances    int                 `json:"instances"`
	Rows         int                 `json:"rows"`
	Failures     []aggregate.Failure `json:"failures,omitempty"`
	SkippedLines map[string]int      `json:"skipped_lines,omitempty"`
}

// NewRunSummary builds a summary for a finished aggregation over a
// manifest of the given total size.
func NewRunSummary(table *aggregate.Table, manifestSize int) *RunSummary {
	return &RunSummary{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Instances:    manifestSize,
		Rows:         len(table.Rows),
		Failures:     table.Failures,
		SkippedLines: table.SkippedLines,
	}
}

// WriteSummary writes the run summary as indented JSON.
func WriteSummary(path string, summary *RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode run summary")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write run summary %s", path)
	}
	return nil
}
