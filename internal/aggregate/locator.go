package aggregate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Locate returns the first file under instanceDir/subdir whose name
// contains pattern, compared case-insensitively. The directory listing is
// sorted so the match is deterministic across platforms. A missing
// subdirectory is treated the same as no match.
func Locate(instanceDir, subdir, pattern string) (string, bool) {
	searchDir := filepath.Join(instanceDir, subdir)
	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return "", false
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	want := strings.ToLower(pattern)
	for _, name := range names {
		if strings.Contains(strings.ToLower(strings.TrimSpace(name)), want) {
			return filepath.Join(searchDir, name), true
		}
	}
	return "", false
}
