package aggregate

import (
	"fmt"
	"math"
)

// metricColumn binds one output column to the fixed subdirectory and
// filename pattern its source file is located by. The explicit mapping
// keeps file discovery deterministic: the locator takes the
// lexicographically first case-insensitive match.
type metricColumn struct {
	header  string
	subdir  string
	pattern string
}

// The output column order is fixed, one mean column per (metric,
// algorithm) pair followed by one significance column per metric.
var metricColumns = []metricColumn{
	{"HV_MOEA_D", "hypervolume", "hv_moead"},
	{"HV_COMOLS_D", "hypervolume", "hv_comolsd"},
	{"HV_NSGA2", "hypervolume", "hv_nsga2"},
	{"EPS_MOEA_D", "epsilon_additive", "esp_ad_moead"},
	{"EPS_COMOLS_D", "epsilon_additive", "esp_ad_comolsd"},
	{"EPS_NSGA2", "epsilon_additive", "esp_ad_nsga2"},
	{"IGD_MOAE_D", "igd", "igd_moead"},
	{"IGD_COMOLS_D", "igd", "igd_comolsd"},
	{"IGD_NSGA2", "igd", "igd_nsga2"},
}

var kruskalColumns = []metricColumn{
	{"Kruskal Wallis Test (HV)", "kruskal", "hv_saidakruskal"},
	{"Kruskal Wallis Test (EPS)", "kruskal", "eps_saidakruskal"},
	{"Kruskal Wallis Test (IGD)", "kruskal", "igd_saidakruskal"},
}

// Headers returns the full output header row, identity column first.
func Headers() []string {
	headers := make([]string, 0, 1+len(metricColumns)+len(kruskalColumns))
	headers = append(headers, "Instance")
	for _, c := range metricColumns {
		headers = append(headers, c.header)
	}
	for _, c := range kruskalColumns {
		headers = append(headers, c.header)
	}
	return headers
}

// Row is one instance's aggregated results: a mean per (metric, algorithm)
// pair and a significance summary per metric, in column order.
type Row struct {
	Instance string
	Means    []MeanResult // parallel to metricColumns
	Kruskal  []string     // parallel to kruskalColumns
}

// Cells renders the row as formatted text cells matching Headers.
func (r *Row) Cells() []string {
	cells := make([]string, 0, 1+len(r.Means)+len(r.Kruskal))
	cells = append(cells, r.Instance)
	for _, m := range r.Means {
		cells = append(cells, FormatMean(m.Mean))
	}
	cells = append(cells, r.Kruskal...)
	return cells
}

// FormatMean renders a mean to 4 decimal places; a missing value (NaN)
// renders as the literal "nan".
func FormatMean(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.4f", v)
}

// Failure records why an instance produced no row.
type Failure struct {
	Instance string `json:"instance"`
	Reason   string `json:"reason"`
}

// Table is the aggregation outcome: one row per successfully processed
// instance in manifest order, plus the failures and per-file skipped-line
// counts observed along the way.
type Table struct {
	Rows         []*Row
	Failures     []Failure
	SkippedLines map[string]int
}
