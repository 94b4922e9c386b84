package testkit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Kit materializes analysis directory fixtures for aggregator tests: a
// root holding one subdirectory per instance, metric files under the fixed
// metric subfolders, and the processed-instances manifest.
type Kit struct {
	t    *testing.T
	Root string
}

// New creates a kit rooted in a fresh temporary directory.
func New(t *testing.T) *Kit {
	t.Helper()
	return &Kit{t: t, Root: t.TempDir()}
}

// AnalysisDir returns the analysis root the aggregator is pointed at.
func (k *Kit) AnalysisDir() string {
	return k.Root
}

// WriteManifest writes processed_instances.txt listing the given instances.
func (k *Kit) WriteManifest(instances ...string) {
	k.t.Helper()
	content := strings.Join(instances, "\n") + "\n"
	k.writeFile(filepath.Join(k.Root, "processed_instances.txt"), content)
}

// WriteMetricFile writes a newline-delimited metric file, one value per
// line, under instance/subdir/name.
func (k *Kit) WriteMetricFile(instance, subdir, name string, values ...float64) {
	k.t.Helper()
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%g\n", v)
	}
	k.WriteRawFile(instance, subdir, name, sb.String())
}

// WriteRawFile writes arbitrary content under instance/subdir/name,
// creating the directories as needed.
func (k *Kit) WriteRawFile(instance, subdir, name, content string) {
	k.t.Helper()
	dir := filepath.Join(k.Root, instance, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		k.t.Fatalf("mkdir %s: %v", dir, err)
	}
	k.writeFile(filepath.Join(dir, name), content)
}

// MkInstanceDir creates an empty instance directory.
func (k *Kit) MkInstanceDir(instance string) {
	k.t.Helper()
	if err := os.MkdirAll(filepath.Join(k.Root, instance), 0o755); err != nil {
		k.t.Fatalf("mkdir %s: %v", instance, err)
	}
}

func (k *Kit) writeFile(path, content string) {
	k.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		k.t.Fatalf("write %s: %v", path, err)
	}
}
