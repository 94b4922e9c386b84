package aggregate

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/gustavojorge/statistical-tests-suit/internal"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// Builder aggregates per-instance metric files into a comparative table.
type Builder struct {
	baseDir      string
	manifestName string
	alpha        float64
	log          *internal.Logger
}

// NewBuilder creates a table builder rooted at the analysis directory.
func NewBuilder(baseDir, manifestName string, alpha float64, logger *internal.Logger) *Builder {
	return &Builder{
		baseDir:      baseDir,
		manifestName: manifestName,
		alpha:        alpha,
		log:          logger,
	}
}

// ReadManifest reads the processed-instances list, one instance directory
// name per line, blank lines ignored. A missing manifest is a fatal
// startup error for the aggregator.
func (b *Builder) ReadManifest() ([]string, error) {
	path := filepath.Join(b.baseDir, b.manifestName)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "processed instances file not found at %s", path)
	}
	defer f.Close()

	var instances []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		instances = append(instances, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return instances, nil
}

// Build folds the manifest instances into a table: each instance yields
// either a row or a recorded failure, never an abort. Rows keep manifest
// order.
func (b *Builder) Build(instances []string) *Table {
	table := &Table{SkippedLines: make(map[string]int)}
	for _, instance := range instances {
		row, failure := b.processInstance(instance, table.SkippedLines)
		if failure != nil {
			b.log.Warn("instance %s skipped: %s", failure.Instance, failure.Reason)
			table.Failures = append(table.Failures, *failure)
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// processInstance locates and averages the nine metric files and parses
// the three Kruskal-Wallis outputs of one instance. Missing files degrade
// to NaN means resp. "N/A" summaries rather than failing the instance;
// only a missing instance directory drops it.
func (b *Builder) processInstance(instance string, skipped map[string]int) (*Row, *Failure) {
	instanceDir := filepath.Join(b.baseDir, instance)
	info, err := os.Stat(instanceDir)
	if err != nil || !info.IsDir() {
		return nil, &Failure{Instance: instance, Reason: "instance directory not found"}
	}

	row := &Row{
		Instance: instance,
		Means:    make([]MeanResult, len(metricColumns)),
		Kruskal:  make([]string, len(kruskalColumns)),
	}

	for i, col := range metricColumns {
		path, ok := Locate(instanceDir, col.subdir, col.pattern)
		if !ok {
			b.log.Debug("instance %s: no %s file matching %q", instance, col.subdir, col.pattern)
			path = ""
		}
		row.Means[i] = ReadMean(path)
		if row.Means[i].Skipped > 0 {
			skipped[path] = row.Means[i].Skipped
			b.log.Warn("instance %s: skipped %d unparseable lines in %s", instance, row.Means[i].Skipped, path)
		}
	}

	for i, col := range kruskalColumns {
		path, ok := Locate(instanceDir, col.subdir, col.pattern)
		if !ok {
			path = ""
		}
		row.Kruskal[i] = ParseKruskal(path, b.alpha)
	}

	return row, nil
}
