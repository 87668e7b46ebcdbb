package services

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/ojbennett/fpl-squad-picker/internal/config"
	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
)

// NextDeadline evaluates the configured deadline recurrence rule and
// returns the first occurrence after now. Returns the zero time when no
// rule is configured or the rule has no future occurrence.
func NextDeadline(cfg *config.Config, now time.Time) time.Time {
	if cfg == nil || cfg.DeadlineRule == "" {
		return time.Time{}
	}

	rule, err := rrule.StrToRRule(cfg.DeadlineRule)
	if err != nil {
		// Config validation already rejects bad rules; treat as unset
		return time.Time{}
	}

	return rule.After(now, false)
}

// sortByProjectedScore returns a copy of candidates ordered by projected
// score descending, preserving input order on ties
func sortByProjectedScore(candidates []model.PlayerCandidate) []model.PlayerCandidate {
	sorted := make([]model.PlayerCandidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProjectedScore > sorted[j].ProjectedScore
	})

	return sorted
}
