package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

func TestLocalHeuristicDetectContext(t *testing.T) {
	local := NewLocalHeuristic(tables.Default())

	tests := []struct {
		name        string
		jd          string
		industry    string
		companyType string
		roleType    string
	}{
		{
			name:        "tech enterprise",
			jd:          "Senior Software Engineer at a Fortune 500 enterprise",
			industry:    "tech",
			companyType: tables.CompanyEnterprise,
			roleType:    tables.RoleTechnical,
		},
		{
			name:        "tech startup",
			jd:          "Backend developer for a seed-stage startup",
			industry:    "tech",
			companyType: tables.CompanyStartup,
			roleType:    tables.RoleTechnical,
		},
		{
			name:        "law firm",
			jd:          "Associate attorney at an AmLaw 100 law firm",
			industry:    "law",
			companyType: tables.CompanyLawFirm,
			roleType:    tables.RoleLegal,
		},
		{
			name:        "accounting",
			jd:          "CPA with audit background for a Big 4 firm",
			industry:    "finance",
			companyType: tables.CompanyAccounting,
			roleType:    tables.RoleAccounting,
		},
		{
			name:        "unclassified",
			jd:          "Retail floor supervisor",
			industry:    "general",
			companyType: tables.CompanyGeneral,
			roleType:    tables.RoleGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := local.DetectContext(context.Background(), tt.jd, "")
			assert.Equal(t, tt.industry, ctx.Industry)
			assert.Equal(t, tt.companyType, ctx.CompanyType)
			assert.Equal(t, tt.roleType, ctx.RoleType)
			assert.Equal(t, "mid", ctx.RoleLevel)
			assert.Equal(t, "medium", ctx.CompanySize)
		})
	}
}

func TestLocalHeuristicNeutralCriteria(t *testing.T) {
	local := NewLocalHeuristic(tables.Default())

	criteria := local.GenerateCriteria(context.Background(), "any description", Context{})
	assert.Empty(t, criteria.MissionCriticalSkills)
	assert.Equal(t, "medium", criteria.TechnicalComplexity)
	assert.Equal(t, "medium", criteria.ScaleRequirements)

	elite := local.EvaluateElite(context.Background(), "resume text", criteria)
	assert.InDelta(t, 5.0, elite.Overall.Score, 1e-9)
	assert.Equal(t, "consider", elite.Overall.Recommendation)
	assert.InDelta(t, 5.0, elite.MissionCriticalSkills.Score, 1e-9)
}

func TestLocalHeuristicAnalyzeSkills(t *testing.T) {
	local := NewLocalHeuristic(tables.Default())

	analysis := local.AnalyzeSkills(context.Background(),
		"Experienced with python and docker",
		"Must know python and kubernetes")

	var candidate []string
	for _, s := range analysis.CandidateSkills {
		candidate = append(candidate, s.Skill)
	}
	var required []string
	for _, s := range analysis.RequiredSkills {
		required = append(required, s.Skill)
	}

	assert.Contains(t, candidate, "python")
	assert.Contains(t, candidate, "docker")
	assert.Contains(t, required, "python")
	assert.Contains(t, required, "kubernetes")
	assert.NotContains(t, required, "docker")

	require.NotEmpty(t, analysis.RequiredSkills)
	assert.Equal(t, "required", analysis.RequiredSkills[0].Importance)
}

func TestLocalHeuristicNeverSuggestsWeights(t *testing.T) {
	local := NewLocalHeuristic(tables.Default())

	_, ok := local.SuggestWeights(context.Background(), Context{}, Criteria{})
	assert.False(t, ok)
	assert.False(t, local.Enhanced())
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONBlock(tt.in))
		})
	}
}
