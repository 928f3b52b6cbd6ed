package trainings

import "strings"

// Filter returns the trainings matching the search term with a
// case-insensitive substring test over the activity name and the customer full
// name. A training without an embedded customer never matches on name. An
// empty term matches everything.
func Filter(term string, list []Training) []Training {
	if term == "" {
		return list
	}

	term = strings.ToLower(term)
	var matched []Training
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Activity), term) ||
			strings.Contains(strings.ToLower(t.CustomerName()), term) {
			matched = append(matched, t)
		}
	}
	return matched
}
