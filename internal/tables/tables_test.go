package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreInstitutionTiers(t *testing.T) {
	tbl := Default()

	tests := []struct {
		name        string
		institution string
		degree      string
		field       string
		want        float64
	}{
		{"tier1 base", "Stanford University", "Unknown", "General", 9.5},
		{"tier1 specialty field bonus", "Georgia Tech", "Unknown", "Computer Science", 10.0},
		{"tier1 graduate bonus", "Yale University", "Master", "General", 9.8},
		{"tier2 base", "UCLA", "Unknown", "General", 7.5},
		{"tier2 graduate bonus", "UCLA", "Master of Science", "General", 7.8},
		{"specialty program with matching field", "Waterloo Tech Campus", "Unknown", "Computer Science", 8.0},
		{"generic university", "Springfield University", "Unknown", "General", 5.0},
		{"generic university graduate", "Springfield University", "Master", "General", 5.5},
		{"unrecognized institution", "Bootcamp Academy", "Unknown", "General", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.ScoreInstitution(tt.institution, tt.degree, tt.field)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScoreInstitutionTier1WinsOverTier2(t *testing.T) {
	tbl := Default()

	// A crafted name containing both a Tier 1 entry (Yale) and a Tier 2
	// entry (Duke) must classify as Tier 1.
	ambiguous := "Yale Duke University"

	score := tbl.ScoreInstitution(ambiguous, "Unknown", "General")
	assert.InDelta(t, 9.5, score, 1e-9)
	assert.Equal(t, "Tier 1 - Us Top15", tbl.InstitutionTier(ambiguous))
}

func TestInstitutionTierLabels(t *testing.T) {
	tbl := Default()

	assert.Equal(t, "Tier 1 - Us Top15", tbl.InstitutionTier("MIT"))
	assert.Equal(t, "Tier 2 - Strong Universities", tbl.InstitutionTier("UCLA"))
	assert.Equal(t, "Tier 3", tbl.InstitutionTier("Bootcamp Academy"))
}

func TestDetectRoleType(t *testing.T) {
	tests := []struct {
		jd   string
		want string
	}{
		{"Looking for a software engineer", RoleTechnical},
		{"Seeking an engineering manager to direct the team", RoleTechnical},
		{"Hiring a sales account executive", RoleSales},
		{"Attorney needed for litigation practice", RoleLegal},
		{"CPA with audit experience", RoleAccounting},
		{"Registered nurse for our clinic", RoleHealthcare},
		{"General office help", RoleGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectRoleType(tt.jd), "jd: %s", tt.jd)
	}
}

func TestDetectCompanyType(t *testing.T) {
	tests := []struct {
		jd   string
		want string
	}{
		{"Series B startup in fintech", CompanyStartup},
		{"Fortune 500 enterprise environment", CompanyEnterprise},
		{"Prestigious law firm", CompanyLawFirm},
		{"Big name in accounting and cpa services", CompanyAccounting},
		{"Hospital network position", CompanyHealthcare},
		{"A nice place to work", CompanyGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectCompanyType(tt.jd), "jd: %s", tt.jd)
	}
}

func TestScoreCompanyRelevance(t *testing.T) {
	tbl := Default()

	tests := []struct {
		name        string
		company     string
		roleType    string
		companyType string
		want        float64
	}{
		{"elite enterprise match", "Google LLC", RoleTechnical, CompanyEnterprise, 9.0},
		{"elite startup match", "Stripe", RoleTechnical, CompanyStartup, 9.0},
		{"enterprise name against startup set", "Google LLC", RoleTechnical, CompanyStartup, 5.0},
		{"big four accounting", "KPMG", RoleAccounting, CompanyAccounting, 9.0},
		{"elite law firm", "Cravath", RoleLegal, CompanyLawFirm, 9.0},
		{"unmatched company", "Acme Corp", RoleTechnical, CompanyEnterprise, 5.0},
		{"general role never elite", "Google LLC", RoleGeneral, CompanyEnterprise, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.ScoreCompanyRelevance(tt.company, tt.roleType, tt.companyType)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestIsEliteCompany(t *testing.T) {
	tbl := Default()

	assert.True(t, tbl.IsEliteCompany("Netflix Inc."))
	assert.True(t, tbl.IsEliteCompany("Mayo Clinic"))
	assert.False(t, tbl.IsEliteCompany("Acme Industrial"))
}

func TestScoreTitleSeniority(t *testing.T) {
	tests := []struct {
		title string
		want  float64
	}{
		{"CTO", 9.0},
		{"VP of Product", 9.0},
		{"Engineering Director", 9.0},
		{"Senior Software Engineer", 7.0},
		{"Tech Lead", 7.0},
		{"Principal Scientist", 7.0},
		{"Product Manager", 6.0},
		{"Software Engineer", 5.0},
		{"Data Analyst", 5.0},
		{"Barista", 3.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ScoreTitleSeniority(tt.title), 1e-9, "title: %s", tt.title)
	}
}

func TestMatchSkills(t *testing.T) {
	tbl := Default()

	matched := tbl.MatchSkills("We need Python, React and AWS experience")
	require.Contains(t, matched, "python")
	require.Contains(t, matched, "react")
	require.Contains(t, matched, "aws")

	assert.Empty(t, tbl.MatchSkills("We need a friendly person"))
}

func TestMatchSkillsVocabularyOrder(t *testing.T) {
	tbl := Default()

	// Hits come back in vocabulary order, not text order.
	matched := tbl.MatchSkills("aws then python")
	require.Len(t, matched, 2)
	assert.Equal(t, "python", matched[0])
	assert.Equal(t, "aws", matched[1])
}
