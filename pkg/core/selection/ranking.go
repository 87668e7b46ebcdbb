package selection

import (
	"math"
	"sort"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

// RankedCandidate pairs a candidate with its computed value metric and
// original input index. The index is what makes tie-breaks deterministic.
type RankedCandidate struct {
	model.PlayerCandidate

	// ValueMetric is ln(score^2 / price). Higher is better.
	ValueMetric float64

	// InputIndex is the candidate's position in the original input slice
	InputIndex int
}

// ValueMetric computes the ranking score for a candidate:
// the natural log of projected score squared over price. The squaring
// gives a convex preference for high-score players over cheap ones.
//
// A zero projected score yields -Inf, which sorts the candidate behind
// every positive-score candidate. Price must be positive; validation
// rejects non-positive prices before ranking ever runs.
func ValueMetric(projectedScore, price float64) float64 {
	return math.Log(projectedScore * projectedScore / price)
}

// Rank orders candidates by value metric, descending. The sort is stable:
// candidates with equal metrics keep their input order, so identical input
// always produces an identical ranking.
func Rank(candidates []model.PlayerCandidate) []RankedCandidate {
	ranked := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = RankedCandidate{
			PlayerCandidate: c,
			ValueMetric:     ValueMetric(c.ProjectedScore, c.Price),
			InputIndex:      i,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValueMetric > ranked[j].ValueMetric
	})

	return ranked
}
