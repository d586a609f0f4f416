package fitscore

import (
	"github.com/jyotidabass/fitscore-calculator/internal/extract"
	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

// ScoreCompanyRelevance averages per-company relevance for the role and
// company type detected from the job description.
func ScoreCompanyRelevance(t *tables.Tables, resumeText, jobDescription string) (float64, CompanyDetails) {
	experience := extract.WorkExperience(resumeText)
	roleType := tables.DetectRoleType(jobDescription)
	companyType := tables.DetectCompanyType(jobDescription)

	details := CompanyDetails{
		RoleType:          roleType,
		TargetCompanyType: companyType,
		Companies:         []ScoredCompany{},
	}

	if len(experience) == 0 {
		details.Error = "No work experience found"
		details.RelevanceScore = 1.0
		return 1.0, details
	}

	var total float64
	for _, pos := range experience {
		score := t.ScoreCompanyRelevance(pos.Company, roleType, companyType)
		total += score
		details.Companies = append(details.Companies, ScoredCompany{
			Company:        pos.Company,
			Role:           pos.Title,
			RelevanceScore: score,
		})
	}

	avg := total / float64(len(experience))
	details.RelevanceScore = avg
	return avg, details
}
