package tables

import "strings"

// Role and company types detected from a job description. The pair is
// detected once per evaluation and applied uniformly to every position.
const (
	RoleTechnical  = "technical"
	RoleManagement = "management"
	RoleSales      = "sales"
	RoleLegal      = "legal"
	RoleAccounting = "accounting"
	RoleHealthcare = "healthcare"
	RoleGeneral    = "general"

	CompanyStartup    = "startup"
	CompanyEnterprise = "enterprise"
	CompanyLawFirm    = "law_firm"
	CompanyAccounting = "accounting"
	CompanyHealthcare = "healthcare"
	CompanyGeneral    = "general"
)

const (
	eliteCompanyScore   = 9.0
	defaultCompanyScore = 5.0
)

// DetectRoleType classifies the role a job description is hiring for.
// Keyword ladders are evaluated in order; the first hit wins.
func DetectRoleType(jobDescription string) string {
	jd := strings.ToLower(jobDescription)

	switch {
	case containsAny(jd, "software", "engineer", "developer", "programmer"):
		return RoleTechnical
	case containsAny(jd, "manager", "director", "lead"):
		return RoleManagement
	case containsAny(jd, "sales", "account", "business"):
		return RoleSales
	case containsAny(jd, "legal", "attorney", "law"):
		return RoleLegal
	case containsAny(jd, "accounting", "cpa", "audit"):
		return RoleAccounting
	case containsAny(jd, "healthcare", "medical", "nurse"):
		return RoleHealthcare
	}
	return RoleGeneral
}

// DetectCompanyType classifies the hiring company from a job description.
func DetectCompanyType(jobDescription string) string {
	jd := strings.ToLower(jobDescription)

	switch {
	case containsAny(jd, "startup", "seed", "series", "early-stage"):
		return CompanyStartup
	case containsAny(jd, "enterprise", "fortune", "large company"):
		return CompanyEnterprise
	case containsAny(jd, "law firm", "legal"):
		return CompanyLawFirm
	case containsAny(jd, "accounting", "cpa"):
		return CompanyAccounting
	case containsAny(jd, "healthcare", "hospital"):
		return CompanyHealthcare
	}
	return CompanyGeneral
}

// ScoreCompanyRelevance scores how relevant a past employer is for the
// detected role/company context: 9.0 for a company in the matching elite
// set, 5.0 otherwise.
func (t *Tables) ScoreCompanyRelevance(company, roleType, companyType string) float64 {
	lower := strings.ToLower(company)

	var category string
	switch roleType {
	case RoleTechnical:
		switch companyType {
		case CompanyStartup:
			category = "TECH_STARTUP_ELITE"
		case CompanyEnterprise:
			category = "TECH_ENTERPRISE_ELITE"
		}
	case RoleAccounting:
		category = "BIG4_ACCOUNTING"
	case RoleLegal:
		category = "ELITE_LAW_FIRMS"
	case RoleHealthcare:
		category = "ELITE_HEALTHCARE"
	}

	if category != "" {
		for _, group := range t.eliteCompanies {
			if group.category != category {
				continue
			}
			for _, elite := range group.companies {
				if strings.Contains(lower, strings.ToLower(elite)) {
					return eliteCompanyScore
				}
			}
		}
	}

	return defaultCompanyScore
}

// IsEliteCompany reports membership in any elite set, regardless of
// industry vertical. Used by the tenure scorer for the elite-tenure bonus.
func (t *Tables) IsEliteCompany(company string) bool {
	lower := strings.ToLower(company)
	for _, group := range t.eliteCompanies {
		for _, elite := range group.companies {
			if strings.Contains(lower, strings.ToLower(elite)) {
				return true
			}
		}
	}
	return false
}
