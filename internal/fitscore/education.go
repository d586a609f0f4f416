package fitscore

import (
	"strings"

	"github.com/jyotidabass/fitscore-calculator/internal/extract"
	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

const (
	noEducationScore = 1.0
	graduateBoost    = 1.0
	maxComponent     = 10.0
)

// ScoreEducation rates the candidate's institutions against the tier tables.
// Degree-only entries (no institution recovered) are listed in the breakdown
// and drive the graduate boost, but only entries with a named institution
// enter the average so noise rows cannot drag down a strong school.
func ScoreEducation(t *tables.Tables, resumeText, jobDescription string) (float64, EducationDetails) {
	entries := extract.Education(resumeText)

	details := EducationDetails{
		Institutions: []ScoredInstitution{},
		Strengths:    []string{},
		Concerns:     []string{},
	}

	var namedTotal float64
	var namedCount int
	var allTotal float64

	for _, e := range entries {
		score := t.ScoreInstitution(e.Institution, e.DegreeType, e.Field)
		allTotal += score
		if e.Institution != extract.UnknownValue {
			namedTotal += score
			namedCount++
		}

		details.Institutions = append(details.Institutions, ScoredInstitution{
			Institution: e.Institution,
			Degree:      e.DegreeType,
			Field:       e.Field,
			Score:       score,
			Tier:        t.InstitutionTier(e.Institution),
		})
	}

	var avg float64
	switch {
	case namedCount > 0:
		avg = namedTotal / float64(namedCount)
	case len(entries) > 0:
		avg = allTotal / float64(len(entries))
	default:
		avg = noEducationScore
		details.Concerns = append(details.Concerns, "No education information found")
	}

	for _, e := range entries {
		degree := strings.ToLower(e.DegreeType)
		if strings.Contains(degree, "master") || strings.Contains(degree, "phd") {
			avg = minF(maxComponent, avg+graduateBoost)
			details.Strengths = append(details.Strengths, "Graduate degree(s) present")
			break
		}
	}

	details.TotalScore = avg
	if len(entries) > 0 {
		details.Tier = t.InstitutionTier(entries[0].Institution)
	} else {
		details.Tier = "No Education"
	}

	return avg, details
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
