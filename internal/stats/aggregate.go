package stats

import (
	"sort"

	"github.com/youpv/personal-trainer/internal/trainings"
)

// ActivityStat holds the summed duration of all trainings sharing one
// activity name.
type ActivityStat struct {
	Activity string  `json:"activity"`
	Duration float64 `json:"duration"`
}

// Aggregate partitions trainings by exact activity name (no case or
// whitespace normalization) and sums their durations. The result is sorted by
// summed duration, descending; ties keep the first-encountered activity order.
//
// A non-numeric duration fails the whole aggregation with a TypeMismatchError
// rather than being coerced to zero.
func Aggregate(list []trainings.Training) ([]ActivityStat, error) {
	totals := make(map[string]float64)
	var order []string

	for _, t := range list {
		minutes, err := t.Minutes()
		if err != nil {
			return nil, err
		}
		if _, seen := totals[t.Activity]; !seen {
			order = append(order, t.Activity)
		}
		totals[t.Activity] += minutes
	}

	result := make([]ActivityStat, 0, len(order))
	for _, activity := range order {
		result = append(result, ActivityStat{
			Activity: activity,
			Duration: totals[activity],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Duration > result[j].Duration
	})

	return result, nil
}
