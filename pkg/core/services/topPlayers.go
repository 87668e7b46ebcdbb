package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/internal/config"
	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
	"github.com/ojbennett/fpl-squad-picker/pkg/predictions"
)

// TopPlayersResult contains the highest-projected players for the
// upcoming gameweek
type TopPlayersResult struct {
	Gameweek int
	Tops     int
	Players  []model.PlayerCandidate
}

// ReportFileName is the conventional name for a gameweek's top-players report
func (r *TopPlayersResult) ReportFileName() string {
	return fmt.Sprintf("fpl_prediction_gameweek%d.txt", r.Gameweek)
}

// TopPlayers loads the prediction set and returns the top N players by
// projected score, descending. Ties keep prediction-set order.
func TopPlayers(
	ctx context.Context,
	source predictions.Source,
	cfg *config.Config,
	logger *zap.Logger,
	tops int,
) (*TopPlayersResult, error) {
	logger.Debug("Starting topPlayers", zap.Int("tops", tops))

	if tops <= 0 {
		return nil, fmt.Errorf("tops must be positive, got %d", tops)
	}

	set, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}
	logger.Debug("Loaded predictions",
		zap.Int("count", len(set.Records)),
		zap.Int("gameweek", set.Gameweek))

	candidates, err := set.Candidates()
	if err != nil {
		return nil, err
	}

	sorted := sortByProjectedScore(candidates)
	if tops > len(sorted) {
		tops = len(sorted)
	}

	logger.Info("Top players computed",
		zap.Int("gameweek", set.Gameweek),
		zap.Int("tops", tops))

	return &TopPlayersResult{
		Gameweek: set.Gameweek,
		Tops:     tops,
		Players:  sorted[:tops],
	}, nil
}
