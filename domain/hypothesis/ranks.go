package hypothesis

import "sort"

type ranked struct {
	value float64
	group int
	rank  float64
}

// rankAll pools the groups, sorts the values and assigns midranks: tied
// values all receive the average of the ranks they span.
func rankAll(groups [][]float64) []ranked {
	var pooled []ranked
	for g, group := range groups {
		for _, v := range group {
			pooled = append(pooled, ranked{value: v, group: g})
		}
	}
	sort.Slice(pooled, func(i, j int) bool { return pooled[i].value < pooled[j].value })

	i := 0
	for i < len(pooled) {
		j := i
		for j < len(pooled) && pooled[j].value == pooled[i].value {
			j++
		}
		// ranks are 1-based; a run [i, j) spans ranks i+1 .. j
		mid := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			pooled[k].rank = mid
		}
		i = j
	}
	return pooled
}

func sumOfRanks(pooled []ranked, group int) float64 {
	sum := 0.0
	for _, r := range pooled {
		if r.group == group {
			sum += r.rank
		}
	}
	return sum
}

func sumSquaredRanks(pooled []ranked) float64 {
	sum := 0.0
	for _, r := range pooled {
		sum += r.rank * r.rank
	}
	return sum
}
