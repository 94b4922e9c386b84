package front

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// ReadFront reads a reference front from a whitespace-delimited text file,
// one point per line. Parsing is lenient: lines that are not exactly dim
// numeric tokens are skipped, and the number of skipped lines is returned
// for observability.
func ReadFront(path string, dim int) (Front, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to open reference front %s", path)
	}
	defer f.Close()

	var front Front
	skipped := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, ok := parsePoint(line, dim)
		if !ok {
			skipped++
			continue
		}
		front = append(front, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, errors.Wrapf(err, "failed to read reference front %s", path)
	}
	return front, skipped, nil
}

// ReadExecutions reads a multi-execution solution file: zero or more blocks
// of points separated by one or more blank lines. A trailing block without
// a terminating blank line is still emitted. Non-blank lines that do not
// parse as dim numeric tokens are skipped inside their block.
func ReadExecutions(path string, dim int) ([]Execution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open solution file %s", path)
	}
	defer f.Close()

	var executions []Execution
	var current Execution

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				executions = append(executions, current)
				current = nil
			}
			continue
		}
		if point, ok := parsePoint(line, dim); ok {
			current = append(current, point)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read solution file %s", path)
	}
	if len(current) > 0 {
		executions = append(executions, current)
	}
	return executions, nil
}

// ReadGroups reads blank-line-separated sample populations of scalar
// values, the input shape shared by the statistical test commands. Only
// the first token of each line is taken; non-numeric lines are skipped.
func ReadGroups(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sample file %s", path)
	}
	defer f.Close()

	var groups [][]float64
	var current []float64

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		fields := strings.Fields(line)
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		current = append(current, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read sample file %s", path)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups, nil
}

func parsePoint(line string, dim int) (Point, bool) {
	fields := strings.Fields(line)
	if len(fields) != dim {
		return nil, false
	}
	point := make(Point, dim)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, false
		}
		point[i] = v
	}
	return point, true
}
