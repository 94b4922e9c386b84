package aggregate

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var pValuePattern = regexp.MustCompile(`p-value of\s+([0-9.eE+-]+)`)

// ParseKruskal scans a Kruskal-Wallis output file for lines reporting a
// p-value at or below alpha and returns them joined by " | ", preserving
// the original test-output text as the significance evidence. If no line
// is significant the literal "H0" is returned; if the file is absent,
// "N/A". Lines without a parseable p-value are skipped.
func ParseKruskal(path string, alpha float64) string {
	if path == "" {
		return "N/A"
	}
	f, err := os.Open(path)
	if err != nil {
		return "N/A"
	}
	defer f.Close()

	var significant []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := pValuePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		p, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if p <= alpha {
			significant = append(significant, line)
		}
	}

	if len(significant) > 0 {
		return strings.Join(significant, " | ")
	}
	return "H0"
}
