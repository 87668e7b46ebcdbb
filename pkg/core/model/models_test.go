package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionFromCode(t *testing.T) {
	cases := []struct {
		code     int
		expected Position
	}{
		{1, PositionGoalkeeper},
		{2, PositionDefender},
		{3, PositionMidfielder},
		{4, PositionForward},
	}

	for _, tc := range cases {
		pos, err := PositionFromCode(tc.code)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, pos)
	}
}

func TestPositionFromCode_Invalid(t *testing.T) {
	for _, code := range []int{0, 5, -1, 99} {
		_, err := PositionFromCode(code)
		assert.Error(t, err, "code %d should be rejected", code)
	}
}

func TestDefaultConstraints(t *testing.T) {
	constraints := DefaultConstraints(100, true)

	assert.Equal(t, 2, constraints.PositionCapacity[PositionGoalkeeper])
	assert.Equal(t, 5, constraints.PositionCapacity[PositionDefender])
	assert.Equal(t, 5, constraints.PositionCapacity[PositionMidfielder])
	assert.Equal(t, 3, constraints.PositionCapacity[PositionForward])
	assert.Equal(t, 3, constraints.TeamCapacity)
	assert.Equal(t, 100.0, constraints.Budget)
	assert.True(t, constraints.AutoSelectBench)

	// 15-player squad in total
	total := 0
	for _, capacity := range constraints.PositionCapacity {
		total += capacity
	}
	assert.Equal(t, 15, total)
}

func TestRosterSummary(t *testing.T) {
	roster := &Roster{
		TotalCost:       83.5,
		ExpectedPoints:  71.2,
		RemainingBudget: 16.5,
		AutoSelectBench: false,
	}

	assert.Equal(t,
		"Total Cost: 83.5M, Expected Points: 71.2 Points, Bank: 16.5M, Low budget: false",
		roster.Summary())
}
