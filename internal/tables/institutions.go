package tables

import "strings"

// Institution base scores and caps by classification band.
const (
	tier1Base     = 9.5
	tier1Cap      = 10.0
	tier2Base     = 7.5
	tier2Cap      = 8.5
	specialtyBase = 8.0
	genericBase   = 5.0
	genericCap    = 6.5
	unknownScore  = 3.0

	specialtyFieldBonus = 0.5
	graduateBonus       = 0.3
)

// ScoreInstitution scores an extracted institution name on the [3.0, 10.0]
// band. Lookup precedence is strict: Tier 1, then Tier 2, then specialty
// programs, then the generic university/college fallback. The first known
// name contained in the extracted string wins; later tables are not
// consulted.
func (t *Tables) ScoreInstitution(institution, degreeType, field string) float64 {
	lower := strings.ToLower(institution)

	for _, group := range t.tier1Schools {
		for _, school := range group.schools {
			if strings.Contains(lower, strings.ToLower(school)) {
				score := tier1Base
				if field != "" && specialtyFieldMatch(field, group.category) {
					score = min(tier1Cap, score+specialtyFieldBonus)
				}
				if isGraduateDegree(degreeType) {
					score = min(tier1Cap, score+graduateBonus)
				}
				return score
			}
		}
	}

	for _, group := range t.tier2Schools {
		for _, school := range group.schools {
			if strings.Contains(lower, strings.ToLower(school)) {
				score := tier2Base
				if field != "" && specialtyFieldMatch(field, group.category) {
					score = min(tier2Cap, score+specialtyFieldBonus)
				}
				if isGraduateDegree(degreeType) {
					score = min(tier2Cap, score+graduateBonus)
				}
				return score
			}
		}
	}

	for _, group := range t.specialtyPrograms {
		for _, school := range group.schools {
			if strings.Contains(lower, strings.ToLower(school)) && field != "" && specialtyFieldMatch(field, group.category) {
				return specialtyBase
			}
		}
	}

	if strings.Contains(lower, "university") || strings.Contains(lower, "college") {
		score := genericBase
		if isGraduateDegree(degreeType) {
			score = min(genericCap, score+specialtyFieldBonus)
		}
		return score
	}

	return unknownScore
}

// InstitutionTier reports the classification label for an institution,
// using the same precedence as ScoreInstitution. Used for reporting only.
func (t *Tables) InstitutionTier(institution string) string {
	lower := strings.ToLower(institution)

	for _, group := range t.tier1Schools {
		for _, school := range group.schools {
			if strings.Contains(lower, strings.ToLower(school)) {
				return "Tier 1 - " + formatCategory(group.category)
			}
		}
	}

	for _, group := range t.tier2Schools {
		for _, school := range group.schools {
			if strings.Contains(lower, strings.ToLower(school)) {
				return "Tier 2 - " + formatCategory(group.category)
			}
		}
	}

	for _, group := range t.specialtyPrograms {
		for _, school := range group.schools {
			if strings.Contains(lower, strings.ToLower(school)) {
				return "Specialty - " + formatCategory(group.category)
			}
		}
	}

	return "Tier 3"
}

func isGraduateDegree(degreeType string) bool {
	lower := strings.ToLower(degreeType)
	return strings.Contains(lower, "master") || strings.Contains(lower, "phd")
}

// specialtyFieldMatch reports whether a field of study falls under the
// specialty a school category is known for.
func specialtyFieldMatch(field, category string) bool {
	fieldLower := strings.ToLower(field)

	switch {
	case strings.Contains(category, "CS") || strings.Contains(category, "COMPUTER"):
		return containsAny(fieldLower, "computer", "software", "cs", "computing")
	case strings.Contains(category, "ENGINEERING"):
		return containsAny(fieldLower, "engineering", "mechanical", "electrical", "civil", "chemical")
	case strings.Contains(category, "BUSINESS") || strings.Contains(category, "MBA"):
		return containsAny(fieldLower, "business", "mba", "management", "finance", "economics")
	case strings.Contains(category, "MEDICAL"):
		return containsAny(fieldLower, "medical", "medicine", "health", "nursing", "pharmacy")
	case strings.Contains(category, "LAW"):
		return containsAny(fieldLower, "law", "legal", "juris", "jd")
	}

	return false
}

// formatCategory turns "US_TOP15" into "Us Top15" for report labels.
func formatCategory(category string) string {
	words := strings.Split(strings.ToLower(category), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
