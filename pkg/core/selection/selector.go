package selection

import (
	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

// selectionState tracks the running roster during a single greedy sweep
type selectionState struct {
	constraints model.RosterConstraints
	roster      map[model.Position][]model.PlayerCandidate
	teamCount   map[string]int
	totalCost   float64
}

func newSelectionState(constraints model.RosterConstraints) *selectionState {
	roster := make(map[model.Position][]model.PlayerCandidate, len(model.Positions))
	for _, pos := range model.Positions {
		roster[pos] = []model.PlayerCandidate{}
	}
	return &selectionState{
		constraints: constraints,
		roster:      roster,
		teamCount:   make(map[string]int),
		totalCost:   0,
	}
}

// canAdd is the admission predicate. The checks run in a fixed order and
// short-circuit on the first failure: position capacity, then team
// capacity, then budget.
func (s *selectionState) canAdd(c model.PlayerCandidate) bool {
	if len(s.roster[c.Position]) >= s.constraints.PositionCapacity[c.Position] {
		return false
	}
	if s.teamCount[c.Team] >= s.constraints.TeamCapacity {
		return false
	}
	if s.totalCost+c.Price > s.constraints.Budget {
		return false
	}
	return true
}

// admit adds a candidate to the roster and updates the running totals
func (s *selectionState) admit(c model.PlayerCandidate) {
	s.roster[c.Position] = append(s.roster[c.Position], c)
	s.teamCount[c.Team]++
	s.totalCost += c.Price
}

// prefillBench admits the single cheapest candidate for each position,
// scanning the whole candidate set. Ties on price resolve to the
// earlier-ranked candidate.
//
// This pass deliberately bypasses the admission predicate: the four bench
// picks are admitted regardless of team capacity or budget, and the main
// pass may later admit the same player again. Both behaviours come
// straight from the selection protocol and are covered by tests; do not
// add the missing checks here without a deliberate product decision
// (see DESIGN.md).
func (s *selectionState) prefillBench(ranked []RankedCandidate) {
	for _, pos := range model.Positions {
		cheapestIdx := -1
		for i, c := range ranked {
			if c.Position != pos {
				continue
			}
			if cheapestIdx == -1 || c.Price < ranked[cheapestIdx].Price {
				cheapestIdx = i
			}
		}
		if cheapestIdx == -1 {
			// No candidate at this position; nothing to pre-fill
			continue
		}
		s.admit(ranked[cheapestIdx].PlayerCandidate)
	}
}

// buildRoster flattens the position groups in fixed order and computes
// the final aggregates
func (s *selectionState) buildRoster() *model.Roster {
	roster := &model.Roster{
		Players:         []model.PlayerCandidate{},
		ByPosition:      s.roster,
		TeamCount:       s.teamCount,
		TotalCost:       s.totalCost,
		AutoSelectBench: s.constraints.AutoSelectBench,
	}

	for _, pos := range model.Positions {
		for _, c := range s.roster[pos] {
			roster.Players = append(roster.Players, c)
			roster.ExpectedPoints += c.ProjectedScore
		}
	}
	roster.RemainingBudget = s.constraints.Budget - s.totalCost

	return roster
}

// SelectSquad picks a squad from the candidate set under the given
// constraints. Candidates are ranked by value metric, then admitted in a
// single greedy sweep: each candidate joins the roster iff it passes the
// admission predicate, and a skipped candidate is never revisited, even
// if budget freed up later would have allowed it. The algorithm is a
// deterministic heuristic, not an exact knapsack solver.
//
// A roster with fewer than the nominal 15 players (budget or team limits
// exhausted first) is a valid result, not an error. Validation failures
// abort the run with no roster at all.
func SelectSquad(candidates []model.PlayerCandidate, constraints model.RosterConstraints) (*model.Roster, error) {
	if err := ValidateCandidates(candidates); err != nil {
		return nil, err
	}
	if err := ValidateConstraints(constraints); err != nil {
		return nil, err
	}

	ranked := Rank(candidates)
	state := newSelectionState(constraints)

	if constraints.AutoSelectBench {
		state.prefillBench(ranked)
	}

	// Main pass: one sweep over the ranked list. Selection is final after
	// this loop regardless of how much budget or capacity remains.
	for _, c := range ranked {
		if state.canAdd(c.PlayerCandidate) {
			state.admit(c.PlayerCandidate)
		}
	}

	return state.buildRoster(), nil
}
