package fitscore

import (
	"strings"

	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

const noRequiredSkillsScore = 5.0

// ScoreSkills matches the vocabulary skills required by the job description
// against those found in the resume and maps the match percentage to score
// bands. With no required skills identified the component is neutral.
func ScoreSkills(t *tables.Tables, resumeText, jobDescription string) (float64, SkillsDetails) {
	required := t.MatchSkills(jobDescription)
	candidate := t.MatchSkills(resumeText)

	details := SkillsDetails{
		RequiredSkills:  required,
		CandidateSkills: candidate,
		Matches:         []string{},
		Missing:         []string{},
	}

	if len(required) == 0 {
		details.Score = noRequiredSkillsScore
		details.Error = "No required skills identified"
		return noRequiredSkillsScore, details
	}

	for _, skill := range required {
		if skillMatches(skill, candidate) {
			details.Matches = append(details.Matches, skill)
		} else {
			details.Missing = append(details.Missing, skill)
		}
	}

	pct := float64(len(details.Matches)) / float64(len(required)) * 100

	var score float64
	switch {
	case pct >= 90:
		score = 9.0
	case pct >= 80:
		score = 7.5
	case pct >= 70:
		score = 6.0
	case pct >= 50:
		score = 4.0
	default:
		score = 1.0
	}

	details.MatchPercentage = pct
	details.Score = score
	return score, details
}

func skillMatches(skill string, candidate []string) bool {
	for _, c := range candidate {
		if strings.EqualFold(skill, c) {
			return true
		}
	}
	return false
}
