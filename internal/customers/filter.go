package customers

import "strings"

// Filter returns the customers matching the search term with a case-insensitive
// substring test over firstname, lastname, email and city. An empty term
// matches everything.
func Filter(term string, list []Customer) []Customer {
	if term == "" {
		return list
	}

	term = strings.ToLower(term)
	var matched []Customer
	for _, c := range list {
		if matches(term, c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func matches(lowerTerm string, c Customer) bool {
	for _, field := range []string{c.Firstname, c.Lastname, c.Email, c.City} {
		if strings.Contains(strings.ToLower(field), lowerTerm) {
			return true
		}
	}
	return false
}
