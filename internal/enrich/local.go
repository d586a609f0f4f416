package enrich

import (
	"context"
	"strings"

	"github.com/jyotidabass/fitscore-calculator/internal/tables"
	"github.com/jyotidabass/fitscore-calculator/internal/weights"
)

// LocalHeuristic is the pattern-matching enricher. It is pure, deterministic
// and always available; it is also the fallback path for the insight-backed
// variant.
type LocalHeuristic struct {
	tables *tables.Tables
}

// NewLocalHeuristic builds the heuristic enricher over shared tables.
func NewLocalHeuristic(t *tables.Tables) *LocalHeuristic {
	return &LocalHeuristic{tables: t}
}

// DetectContext classifies industry, company type and role type from the
// job description with keyword ladders. Role level, company size and growth
// stage default to the middle of each scale.
func (l *LocalHeuristic) DetectContext(_ context.Context, jobDescription, _ string) Context {
	jd := strings.ToLower(jobDescription)

	industry := "general"
	switch {
	case containsAny(jd, "software", "engineer", "developer", "tech"):
		industry = "tech"
	case containsAny(jd, "healthcare", "medical", "hospital", "clinic"):
		industry = "healthcare"
	case containsAny(jd, "law", "legal", "attorney", "lawyer"):
		industry = "law"
	case containsAny(jd, "accounting", "cpa", "audit", "finance"):
		industry = "finance"
	}

	companyType := tables.CompanyGeneral
	switch {
	case containsAny(jd, "startup", "seed", "series", "early-stage"):
		companyType = tables.CompanyStartup
	case containsAny(jd, "enterprise", "fortune", "large company"):
		companyType = tables.CompanyEnterprise
	case containsAny(jd, "law firm", "llp", "amlaw"):
		companyType = tables.CompanyLawFirm
	case containsAny(jd, "accounting firm", "big 4"):
		companyType = tables.CompanyAccounting
	case containsAny(jd, "hospital", "healthcare system"):
		companyType = tables.CompanyHealthcare
	}

	return Context{
		Industry:        industry,
		CompanyType:     companyType,
		RoleType:        tables.DetectRoleType(jobDescription),
		RoleLevel:       "mid",
		KeyRequirements: []string{},
		Preferences:     []string{},
		CompanySize:     "medium",
		GrowthStage:     "established",
	}
}

// GenerateCriteria returns the neutral criteria object; the heuristic path
// has no way to synthesize an elite hiring bar from free text.
func (l *LocalHeuristic) GenerateCriteria(_ context.Context, _ string, _ Context) Criteria {
	return Criteria{
		MissionCriticalSkills:     []CriterionSkill{},
		EliteCompanyBenchmarks:    []string{},
		ExpectedOutcomes:          []string{},
		DomainMasteryRequirements: []string{},
		LeadershipIndicators:      []string{},
		TechnicalComplexity:       "medium",
		ScaleRequirements:         "medium",
		IndustryRequirements:      []string{},
	}
}

// AnalyzeSkills builds a skills picture from vocabulary scans of both texts.
func (l *LocalHeuristic) AnalyzeSkills(_ context.Context, resumeText, jobDescription string) SkillsAnalysis {
	analysis := SkillsAnalysis{
		CandidateSkills:       []CandidateSkill{},
		RequiredSkills:        []RequiredSkill{},
		Matches:               []SkillMatch{},
		MissingCriticalSkills: []string{},
		InferredSkills:        []InferredSkill{},
	}

	for _, skill := range l.tables.MatchSkills(resumeText) {
		analysis.CandidateSkills = append(analysis.CandidateSkills, CandidateSkill{
			Skill:           skill,
			Evidence:        "resume",
			Proficiency:     "unknown",
			YearsExperience: "unknown",
		})
	}
	for _, skill := range l.tables.MatchSkills(jobDescription) {
		analysis.RequiredSkills = append(analysis.RequiredSkills, RequiredSkill{
			Skill:      skill,
			Importance: "required",
		})
	}

	return analysis
}

// EvaluateElite returns the neutral elite evaluation; without the insight
// service there is no basis for judging against smart criteria.
func (l *LocalHeuristic) EvaluateElite(_ context.Context, _ string, _ Criteria) EliteEvaluation {
	neutral := func() CriterionScore {
		return CriterionScore{Score: 5.0, Reasoning: "heuristic evaluation"}
	}
	return EliteEvaluation{
		MissionCriticalSkills: neutral(),
		EliteCompanyBenchmark: neutral(),
		ExpectedOutcomes:      neutral(),
		DomainMastery:         neutral(),
		Leadership:            neutral(),
		Overall: OverallEliteScore{
			Score:          5.0,
			Strengths:      []string{},
			Concerns:       []string{},
			Recommendation: "consider",
		},
	}
}

// SuggestWeights never produces a vector on the heuristic path; the weight
// resolver derives weights from defaults and collateral instead.
func (l *LocalHeuristic) SuggestWeights(_ context.Context, _ Context, _ Criteria) (weights.Vector, bool) {
	return weights.Vector{}, false
}

// Enhanced reports false: results are heuristic, not insight-backed.
func (l *LocalHeuristic) Enhanced() bool { return false }

func containsAny(s string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
