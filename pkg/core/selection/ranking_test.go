package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

func TestValueMetric(t *testing.T) {
	// ln(6^2 / 4) = ln(9)
	assert.InDelta(t, math.Log(9), ValueMetric(6, 4), 1e-12)

	// ln(1 / 1) = 0
	assert.Equal(t, 0.0, ValueMetric(1, 1))
}

func TestValueMetric_ZeroScoreIsNegativeInfinity(t *testing.T) {
	metric := ValueMetric(0, 5.0)
	assert.True(t, math.IsInf(metric, -1))
}

func TestRank_DescendingByMetric(t *testing.T) {
	candidates := []model.PlayerCandidate{
		{Name: "Cheap Low", Position: model.PositionMidfielder, Team: "A", Price: 4.0, ProjectedScore: 2},
		{Name: "Expensive High", Position: model.PositionMidfielder, Team: "B", Price: 12.0, ProjectedScore: 9},
		{Name: "Mid", Position: model.PositionForward, Team: "C", Price: 6.0, ProjectedScore: 5},
	}

	ranked := Rank(candidates)
	require.Len(t, ranked, 3)

	// ln(81/12) = 1.91 > ln(25/6) = 1.43 > ln(4/4) = 0
	assert.Equal(t, "Expensive High", ranked[0].Name)
	assert.Equal(t, "Mid", ranked[1].Name)
	assert.Equal(t, "Cheap Low", ranked[2].Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].ValueMetric, ranked[i].ValueMetric)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	// Identical score and price produce identical metrics; input order
	// must be preserved so two runs produce identical rankings
	candidates := []model.PlayerCandidate{
		{Name: "First", Position: model.PositionDefender, Team: "A", Price: 5.0, ProjectedScore: 4},
		{Name: "Second", Position: model.PositionDefender, Team: "B", Price: 5.0, ProjectedScore: 4},
		{Name: "Third", Position: model.PositionDefender, Team: "C", Price: 5.0, ProjectedScore: 4},
	}

	ranked := Rank(candidates)
	require.Len(t, ranked, 3)
	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, "Third", ranked[2].Name)
	assert.Equal(t, 0, ranked[0].InputIndex)
	assert.Equal(t, 1, ranked[1].InputIndex)
	assert.Equal(t, 2, ranked[2].InputIndex)
}

func TestRank_ZeroScoreSortsLast(t *testing.T) {
	candidates := []model.PlayerCandidate{
		{Name: "No Points", Position: model.PositionForward, Team: "A", Price: 4.0, ProjectedScore: 0},
		{Name: "Some Points", Position: model.PositionForward, Team: "B", Price: 11.0, ProjectedScore: 1},
	}

	ranked := Rank(candidates)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Some Points", ranked[0].Name)
	assert.Equal(t, "No Points", ranked[1].Name)
	assert.True(t, math.IsInf(ranked[1].ValueMetric, -1))
}
