package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/internal/config"
	"github.com/ojbennett/fpl-squad-picker/pkg/clients/fixturesclient"
	"github.com/ojbennett/fpl-squad-picker/pkg/predictions"
)

// FixturesClient defines the operations needed to fetch match schedules
type FixturesClient interface {
	Matches(ctx context.Context, matchday int) ([]fixturesclient.Match, error)
}

// ViewFixturesResult contains the upcoming round's match schedule
type ViewFixturesResult struct {
	Matchday     int
	Matches      []fixturesclient.Match
	NextDeadline time.Time
}

// ViewFixtures fetches the match schedule for the given matchday. A zero
// matchday resolves to the prediction set's gameweek, so the default view
// is always the round the predictions cover.
func ViewFixtures(
	ctx context.Context,
	client FixturesClient,
	source predictions.Source,
	cfg *config.Config,
	logger *zap.Logger,
	matchday int,
) (*ViewFixturesResult, error) {
	logger.Debug("Starting viewFixtures", zap.Int("matchday", matchday))

	if matchday == 0 {
		set, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve matchday from predictions: %w", err)
		}
		if set.Gameweek == 0 {
			return nil, fmt.Errorf("prediction set carries no gameweek - pass a matchday explicitly")
		}
		matchday = set.Gameweek
		logger.Debug("Resolved matchday from predictions", zap.Int("matchday", matchday))
	}

	matches, err := client.Matches(ctx, matchday)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}
	logger.Info("Fixtures fetched",
		zap.Int("matchday", matchday),
		zap.Int("matches", len(matches)))

	return &ViewFixturesResult{
		Matchday:     matchday,
		Matches:      matches,
		NextDeadline: NextDeadline(cfg, time.Now()),
	}, nil
}
