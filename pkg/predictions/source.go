// Package predictions is the boundary to the external scoring pipeline.
// The model itself (regression/ensemble inference) lives outside this
// repository; its output reaches the selector as a set of prediction
// records, typically via the CSV file the pipeline writes per gameweek.
package predictions

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

// ErrNoPredictions is returned when the source yields no records at all
var ErrNoPredictions = errors.New("no predictions available")

// Record is one wire row from the scoring pipeline
type Record struct {
	WebName         string  `validate:"required"`
	ElementType     int     `validate:"required,oneof=1 2 3 4"`
	TeamName        string  `validate:"required"`
	NowCost         float64 `validate:"required,gt=0"`
	PredictedPoints float64 `validate:"gte=0"`
}

// Set is one gameweek's worth of prediction records
type Set struct {
	Gameweek int
	Records  []Record
}

// Source yields the prediction set for the upcoming gameweek
type Source interface {
	Load(ctx context.Context) (*Set, error)
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Candidates validates every record and converts the set into selector
// input. Any invalid record fails the whole conversion; records are never
// silently coerced or skipped.
func (s *Set) Candidates() ([]model.PlayerCandidate, error) {
	if len(s.Records) == 0 {
		return nil, ErrNoPredictions
	}

	candidates := make([]model.PlayerCandidate, 0, len(s.Records))
	for i, rec := range s.Records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("invalid prediction record %d (%s): %w", i, rec.WebName, err)
		}

		position, err := model.PositionFromCode(rec.ElementType)
		if err != nil {
			return nil, fmt.Errorf("invalid prediction record %d (%s): %w", i, rec.WebName, err)
		}

		candidates = append(candidates, model.PlayerCandidate{
			Name:           rec.WebName,
			Position:       position,
			Team:           rec.TeamName,
			Price:          rec.NowCost,
			ProjectedScore: rec.PredictedPoints,
		})
	}

	return candidates, nil
}
