package fitscore

import (
	"strings"

	"github.com/jyotidabass/fitscore-calculator/internal/extract"
	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

const (
	eliteTenureRate     = 0.1
	eliteTenureCap      = 0.5
	internshipBonus     = 0.3
	internshipsForBonus = 3

	excludedPositionReason = "Internship/Co-op/Part-time (excluded from tenure calculation)"
)

var internshipTitleWords = []string{
	"intern", "internship", "co-op", "coop", "part-time", "parttime",
}

// ScoreTenureStability averages tenure across full-time positions and maps
// the average onto the stability ladder. Internships and part-time roles
// are excluded from the average but counted toward the internship bonus.
func ScoreTenureStability(t *tables.Tables, resumeText, jobDescription string) (float64, TenureDetails) {
	experience := extract.WorkExperience(resumeText)

	if len(experience) == 0 {
		return 1.0, TenureDetails{
			Positions:         []TenurePosition{},
			ExcludedPositions: []ExcludedPosition{},
			StabilityScore:    1.0,
			Error:             "No work experience found",
		}
	}

	details := TenureDetails{
		Positions:         []TenurePosition{},
		ExcludedPositions: []ExcludedPosition{},
	}

	var totalTenure float64
	var validPositions int

	for _, pos := range experience {
		if isInternship(pos.Title) {
			details.ExcludedPositions = append(details.ExcludedPositions, ExcludedPosition{
				Position: pos.Title,
				Company:  pos.Company,
				Reason:   excludedPositionReason,
			})
			details.InternshipCount++
			continue
		}

		years := extract.TenureYears(pos.Duration)
		if years <= 0 {
			continue
		}
		totalTenure += years
		validPositions++

		isElite := t.IsEliteCompany(pos.Company)
		if isElite {
			details.EliteCompanyTenure += years
		}
		details.Positions = append(details.Positions, TenurePosition{
			Company:        pos.Company,
			Title:          pos.Title,
			TenureYears:    years,
			IsEliteCompany: isElite,
		})
	}

	if validPositions == 0 {
		details.StabilityScore = 1.0
		details.Error = "No valid full-time positions found"
		return 1.0, details
	}

	avg := totalTenure / float64(validPositions)
	details.AverageTenure = avg

	score := stabilityLadder(avg, &details)

	if details.EliteCompanyTenure > 0 {
		bonus := minF(eliteTenureCap, details.EliteCompanyTenure*eliteTenureRate)
		score = minF(maxComponent, score+bonus)
		details.EliteTenureBonus = bonus
	}

	if details.InternshipCount >= internshipsForBonus {
		score = minF(maxComponent, score+internshipBonus)
		details.InternshipBonus = internshipBonus
	}

	details.StabilityScore = score
	return score, details
}

func stabilityLadder(avg float64, details *TenureDetails) float64 {
	switch {
	case avg >= 3.0:
		details.TenurePattern = "Elite stability (3+ years average)"
		details.TenureLevel = "Elite (9.5-10.0)"
		return 9.5
	case avg >= 2.5:
		details.TenurePattern = "Strong stability (2.5-3 years average)"
		details.TenureLevel = "Strong (8.5-9.4)"
		return 8.5
	case avg >= 2.0:
		details.TenurePattern = "Good stability (2-2.5 years average)"
		details.TenureLevel = "Good (7.5-8.4)"
		return 7.5
	case avg >= 1.5:
		details.TenurePattern = "Reasonable stability (1.5-2 years average)"
		details.TenureLevel = "Reasonable (6.5-7.4)"
		return 6.5
	case avg >= 1.0:
		details.TenurePattern = "Some job hopping (1-1.5 years average)"
		details.TenureLevel = "Some Hopping (5.5-6.4)"
		return 5.5
	case avg >= 0.5:
		details.TenurePattern = "Frequent job changes (0.5-1 year average)"
		details.TenureLevel = "Frequent Changes (4.0-5.4)"
		return 4.0
	default:
		details.TenurePattern = "Very short tenures (less than 0.5 years average)"
		details.TenureLevel = "Very Short (1.0-3.9)"
		return 1.0
	}
}

func isInternship(title string) bool {
	lower := strings.ToLower(title)
	for _, word := range internshipTitleWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
