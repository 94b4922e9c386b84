package indicator

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gustavojorge/statistical-tests-suit/domain/front"
)

// IGD computes the inverted generational distance of an approximation set
// against a reference front: the average Euclidean distance from each
// reference point to its nearest point in the approximation set. The
// reference set is fixed; the approximation varies per execution.
//
// An empty approximation set cannot cover anything, so the result is +Inf.
// An empty reference front has no defined average and yields NaN.
func IGD(ref front.Front, approximation front.Front) float64 {
	if len(ref) == 0 {
		return math.NaN()
	}
	if len(approximation) == 0 {
		return math.Inf(1)
	}

	sum := 0.0
	for _, r := range ref {
		nearest := math.Inf(1)
		for _, p := range approximation {
			if d := floats.Distance(r, p, 2); d < nearest {
				nearest = d
			}
		}
		sum += nearest
	}
	return sum / float64(len(ref))
}
