package selection

import (
	"errors"
	"fmt"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

// ErrNoCandidates is returned when a selection run is invoked with an
// empty candidate set. The selector refuses to produce a misleading
// empty roster silently.
var ErrNoCandidates = errors.New("no candidates available for team selection")

// ValidateCandidates checks the full candidate set before selection.
// Any invalid record aborts the run; no partial roster is ever returned
// on a validation failure.
func ValidateCandidates(candidates []model.PlayerCandidate) error {
	if len(candidates) == 0 {
		return ErrNoCandidates
	}

	for i, c := range candidates {
		if c.Name == "" {
			return fmt.Errorf("candidate %d has no name", i)
		}
		if !c.Position.IsValid() {
			return fmt.Errorf("candidate %d (%s) has unrecognised position %q", i, c.Name, c.Position)
		}
		if c.Team == "" {
			return fmt.Errorf("candidate %d (%s) has no team", i, c.Name)
		}
		if c.Price <= 0 {
			return fmt.Errorf("candidate %d (%s) has non-positive price %.2f", i, c.Name, c.Price)
		}
		if c.ProjectedScore < 0 {
			return fmt.Errorf("candidate %d (%s) has negative projected score %.2f", i, c.Name, c.ProjectedScore)
		}
	}

	return nil
}

// ValidateConstraints checks the constraint set for a selection run
func ValidateConstraints(constraints model.RosterConstraints) error {
	if constraints.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %.2f", constraints.Budget)
	}
	if constraints.TeamCapacity <= 0 {
		return fmt.Errorf("team capacity must be positive, got %d", constraints.TeamCapacity)
	}
	if len(constraints.PositionCapacity) == 0 {
		return errors.New("position capacities not set")
	}
	for _, pos := range model.Positions {
		capacity, ok := constraints.PositionCapacity[pos]
		if !ok {
			return fmt.Errorf("no capacity configured for position %s", pos)
		}
		if capacity <= 0 {
			return fmt.Errorf("capacity for position %s must be positive, got %d", pos, capacity)
		}
	}
	return nil
}
