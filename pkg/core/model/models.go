package model

import "fmt"

type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// Positions lists every position in roster flattening order
var Positions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

func (p Position) IsValid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// PositionFromCode maps the FPL element_type wire codes (1-4) to positions.
// Any other code is an error, never silently coerced.
func PositionFromCode(code int) (Position, error) {
	switch code {
	case 1:
		return PositionGoalkeeper, nil
	case 2:
		return PositionDefender, nil
	case 3:
		return PositionMidfielder, nil
	case 4:
		return PositionForward, nil
	}
	return "", fmt.Errorf("unrecognised position code %d (expected 1-4)", code)
}

// PlayerCandidate represents one scored player from the prediction pipeline
type PlayerCandidate struct {
	Name           string
	Position       Position
	Team           string
	Price          float64 // in millions
	ProjectedScore float64
}

// RosterConstraints configures a single selection run.
// Always passed explicitly into the selector so the algorithm carries
// no hidden defaults and stays testable with arbitrary constraint sets.
type RosterConstraints struct {
	PositionCapacity map[Position]int
	TeamCapacity     int
	Budget           float64
	AutoSelectBench  bool
}

// DefaultPositionCapacity returns the standard FPL squad shape:
// 2 goalkeepers, 5 defenders, 5 midfielders, 3 forwards (15 total).
func DefaultPositionCapacity() map[Position]int {
	return map[Position]int{
		PositionGoalkeeper: 2,
		PositionDefender:   5,
		PositionMidfielder: 5,
		PositionForward:    3,
	}
}

// DefaultTeamCapacity is the maximum players allowed from a single club
const DefaultTeamCapacity = 3

// DefaultConstraints returns the standard FPL constraint set for the given budget
func DefaultConstraints(budget float64, autoSelectBench bool) RosterConstraints {
	return RosterConstraints{
		PositionCapacity: DefaultPositionCapacity(),
		TeamCapacity:     DefaultTeamCapacity,
		Budget:           budget,
		AutoSelectBench:  autoSelectBench,
	}
}

// Roster is the result of a selection run. It is built once and never
// mutated afterwards. Players holds the flattened squad in position order
// (goalkeepers, defenders, midfielders, forwards), insertion order
// preserved within each position.
//
// Players has multiset semantics: with bench pre-fill enabled, a bench
// pick can be admitted a second time by the main greedy pass. The selector
// reproduces that protocol exactly, so duplicates are representable here.
type Roster struct {
	Players         []PlayerCandidate
	ByPosition      map[Position][]PlayerCandidate
	TeamCount       map[string]int
	TotalCost       float64
	ExpectedPoints  float64
	RemainingBudget float64
	AutoSelectBench bool
}

// Size returns the number of selected players (duplicates counted)
func (r *Roster) Size() int {
	return len(r.Players)
}

// CountByPosition returns the number of players selected at the given position
func (r *Roster) CountByPosition(p Position) int {
	return len(r.ByPosition[p])
}

// Summary renders the one-line selection report shown to the caller
func (r *Roster) Summary() string {
	return fmt.Sprintf("Total Cost: %.1fM, Expected Points: %.1f Points, Bank: %.1fM, Low budget: %t",
		r.TotalCost, r.ExpectedPoints, r.RemainingBudget, r.AutoSelectBench)
}
