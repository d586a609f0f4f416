package tables

import "strings"

// MatchSkills scans free text for every vocabulary skill present as a
// case-insensitive substring and returns the hits in vocabulary order.
// Substring semantics are deliberate: short names like "go" or "ai" can
// match inside longer words, mirroring how required-skill lines are
// typically written in job descriptions.
func (t *Tables) MatchSkills(text string) []string {
	lower := strings.ToLower(text)

	var matched []string
	for _, skill := range t.skillVocabulary {
		if strings.Contains(lower, skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}
