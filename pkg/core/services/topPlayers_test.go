package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/pkg/predictions"
)

func TestTopPlayers(t *testing.T) {
	mock := &mockSource{
		set: &predictions.Set{
			Gameweek: 21,
			Records: []predictions.Record{
				{WebName: "Middling", ElementType: 3, TeamName: "A", NowCost: 7.0, PredictedPoints: 5.0},
				{WebName: "Star", ElementType: 4, TeamName: "B", NowCost: 12.0, PredictedPoints: 9.5},
				{WebName: "Budget Pick", ElementType: 2, TeamName: "C", NowCost: 4.0, PredictedPoints: 2.1},
			},
		},
	}

	result, err := TopPlayers(context.Background(), mock, testConfig(), zap.NewNop(), 2)
	require.NoError(t, err)

	assert.Equal(t, 21, result.Gameweek)
	assert.Equal(t, 2, result.Tops)
	require.Len(t, result.Players, 2)
	assert.Equal(t, "Star", result.Players[0].Name)
	assert.Equal(t, "Middling", result.Players[1].Name)

	assert.Equal(t, "fpl_prediction_gameweek21.txt", result.ReportFileName())
}

func TestTopPlayers_TopsLargerThanPool(t *testing.T) {
	mock := &mockSource{
		set: &predictions.Set{
			Records: []predictions.Record{
				{WebName: "Only One", ElementType: 1, TeamName: "A", NowCost: 4.0, PredictedPoints: 3.0},
			},
		},
	}

	result, err := TopPlayers(context.Background(), mock, testConfig(), zap.NewNop(), 32)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Tops)
	assert.Len(t, result.Players, 1)
}

func TestTopPlayers_StableOnEqualScores(t *testing.T) {
	mock := &mockSource{
		set: &predictions.Set{
			Records: []predictions.Record{
				{WebName: "First", ElementType: 3, TeamName: "A", NowCost: 6.0, PredictedPoints: 5.0},
				{WebName: "Second", ElementType: 3, TeamName: "B", NowCost: 8.0, PredictedPoints: 5.0},
			},
		},
	}

	result, err := TopPlayers(context.Background(), mock, testConfig(), zap.NewNop(), 2)
	require.NoError(t, err)

	assert.Equal(t, "First", result.Players[0].Name)
	assert.Equal(t, "Second", result.Players[1].Name)
}

func TestTopPlayers_NonPositiveTops(t *testing.T) {
	mock := &mockSource{set: &predictions.Set{}}

	_, err := TopPlayers(context.Background(), mock, testConfig(), zap.NewNop(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tops must be positive")
}

func TestTopPlayers_NoPredictions(t *testing.T) {
	mock := &mockSource{loadErr: predictions.ErrNoPredictions}

	_, err := TopPlayers(context.Background(), mock, testConfig(), zap.NewNop(), 10)
	assert.ErrorIs(t, err, predictions.ErrNoPredictions)
}
