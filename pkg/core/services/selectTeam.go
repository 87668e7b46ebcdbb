package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/internal/config"
	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
	"github.com/ojbennett/fpl-squad-picker/pkg/core/selection"
	"github.com/ojbennett/fpl-squad-picker/pkg/predictions"
)

// SelectTeamOptions configures a selection run
type SelectTeamOptions struct {
	// Budget in millions; zero means use the configured default
	Budget float64

	// AutoSelectBench pre-fills the cheapest player per position before
	// the main selection pass
	AutoSelectBench bool

	// Constraints overrides the full constraint set when non-nil,
	// bypassing config defaults entirely (used by tests and tooling)
	Constraints *model.RosterConstraints
}

// SelectTeamResult contains the selection results
type SelectTeamResult struct {
	RunID        string
	Gameweek     int
	Roster       *model.Roster
	Constraints  model.RosterConstraints
	NextDeadline time.Time
	Summary      string
}

// SelectTeam loads the prediction set for the upcoming gameweek and runs
// the squad selection algorithm against it
func SelectTeam(
	ctx context.Context,
	source predictions.Source,
	cfg *config.Config,
	logger *zap.Logger,
	opts SelectTeamOptions,
) (*SelectTeamResult, error) {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	logger.Debug("Starting selectTeam",
		zap.Float64("budget", opts.Budget),
		zap.Bool("auto_select_bench", opts.AutoSelectBench))

	// Step 1: Load predictions
	logger.Debug("Loading predictions")
	set, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}
	logger.Debug("Loaded predictions",
		zap.Int("count", len(set.Records)),
		zap.Int("gameweek", set.Gameweek))

	// Step 2: Validate and convert to candidates
	candidates, err := set.Candidates()
	if err != nil {
		return nil, err
	}

	// Step 3: Resolve constraints
	var constraints model.RosterConstraints
	if opts.Constraints != nil {
		constraints = *opts.Constraints
	} else {
		constraints = cfg.Constraints(opts.Budget, opts.AutoSelectBench)
	}
	logger.Debug("Resolved constraints",
		zap.Float64("budget", constraints.Budget),
		zap.Int("team_capacity", constraints.TeamCapacity))

	// Step 4: Run the selection algorithm
	roster, err := selection.SelectSquad(candidates, constraints)
	if err != nil {
		return nil, fmt.Errorf("squad selection failed: %w", err)
	}

	logger.Info("Squad selected",
		zap.Int("players", roster.Size()),
		zap.Float64("total_cost", roster.TotalCost),
		zap.Float64("expected_points", roster.ExpectedPoints),
		zap.Float64("remaining_budget", roster.RemainingBudget))

	return &SelectTeamResult{
		RunID:        runID,
		Gameweek:     set.Gameweek,
		Roster:       roster,
		Constraints:  constraints,
		NextDeadline: NextDeadline(cfg, time.Now()),
		Summary:      roster.Summary(),
	}, nil
}
