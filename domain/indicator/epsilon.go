package indicator

import (
	"github.com/gustavojorge/statistical-tests-suit/domain/front"
	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// Sense is the optimization direction of one objective.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// ParseSenses converts a compact direction string such as "--" or "-+"
// (one '-' or '+' per objective) into per-objective senses.
func ParseSenses(s string) ([]Sense, error) {
	senses := make([]Sense, len(s))
	for i, c := range s {
		switch c {
		case '-':
			senses[i] = Minimize
		case '+':
			senses[i] = Maximize
		default:
			return nil, errors.Newf(errors.CodeBadSample, "objective sense must be '-' or '+', got %q", string(c))
		}
	}
	return senses, nil
}

// Epsilon computes the Zitzler unary epsilon indicator of a run relative to
// a reference set: the smallest additive shift (or multiplicative factor)
// by which the run must be translated so that it weakly dominates the
// reference set. Lower is better for any mix of objective senses.
func Epsilon(ref, run front.Front, senses []Sense, multiplicative bool) (float64, error) {
	if len(ref) == 0 || len(run) == 0 {
		return 0, errors.New(errors.CodeBadSample, "epsilon indicator needs a non-empty run and reference set")
	}
	if len(senses) != len(ref[0]) {
		return 0, errors.Newf(errors.CodeBadSample, "got %d objective senses for %d objectives", len(senses), len(ref[0]))
	}

	var eps float64
	for i, r := range ref {
		var epsJ float64
		for j, p := range run {
			var epsK float64
			for k := range r {
				var epsTemp float64
				if multiplicative {
					if (p[k] < 0 && r[k] > 0) || (p[k] > 0 && r[k] < 0) || p[k] == 0 || r[k] == 0 {
						return 0, errors.New(errors.CodeBadSample, "multiplicative epsilon requires strictly same-signed non-zero objectives")
					}
					if senses[k] == Minimize {
						epsTemp = p[k] / r[k]
					} else {
						epsTemp = r[k] / p[k]
					}
				} else {
					if senses[k] == Minimize {
						epsTemp = p[k] - r[k]
					} else {
						epsTemp = r[k] - p[k]
					}
				}
				if k == 0 || epsTemp > epsK {
					epsK = epsTemp
				}
			}
			if j == 0 || epsK < epsJ {
				epsJ = epsK
			}
		}
		if i == 0 || epsJ > eps {
			eps = epsJ
		}
	}
	return eps, nil
}
