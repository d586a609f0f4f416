// Package enrich defines the optional enrichment contract used by the
// fitscore pipeline: context detection, smart-criteria generation, skills
// analysis, elite evaluation and weight suggestion. Two implementations
// exist: a pure local heuristic and an insight-service variant backed by
// an LLM. The pipeline depends only on the Enricher interface and never
// fails because the insight service is unreachable.
package enrich

import (
	"context"

	"github.com/jyotidabass/fitscore-calculator/internal/weights"
)

// Context describes the hiring context detected from a job description.
type Context struct {
	Industry        string   `json:"industry"`
	CompanyType     string   `json:"company_type"`
	RoleType        string   `json:"role_type"`
	RoleLevel       string   `json:"role_level"`
	KeyRequirements []string `json:"key_requirements"`
	Preferences     []string `json:"preferences"`
	CompanySize     string   `json:"company_size"`
	GrowthStage     string   `json:"growth_stage"`
}

// CriterionSkill is one mission-critical skill in a smart-criteria object.
type CriterionSkill struct {
	Skill       string `json:"skill"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
}

// Criteria is the elite hiring bar derived for a specific requisition.
type Criteria struct {
	MissionCriticalSkills     []CriterionSkill `json:"mission_critical_skills"`
	EliteCompanyBenchmarks    []string         `json:"elite_company_benchmarks"`
	ExpectedOutcomes          []string         `json:"expected_outcomes"`
	DomainMasteryRequirements []string         `json:"domain_mastery_requirements"`
	LeadershipIndicators      []string         `json:"leadership_indicators"`
	TechnicalComplexity       string           `json:"technical_complexity"`
	ScaleRequirements         string           `json:"scale_requirements"`
	IndustryRequirements      []string         `json:"industry_specific_requirements"`
}

// CandidateSkill is one skill attributed to the candidate.
type CandidateSkill struct {
	Skill           string `json:"skill"`
	Evidence        string `json:"evidence"`
	Proficiency     string `json:"proficiency"`
	YearsExperience string `json:"years_experience"`
}

// RequiredSkill is one skill the requisition asks for.
type RequiredSkill struct {
	Skill       string `json:"skill"`
	Importance  string `json:"importance"`
	Description string `json:"description"`
}

// SkillMatch pairs a required skill with the candidate's evidence for it.
type SkillMatch struct {
	Skill             string `json:"skill"`
	MatchQuality      string `json:"match_quality"`
	CandidateEvidence string `json:"candidate_evidence"`
	RequirementLevel  string `json:"requirement_level"`
}

// InferredSkill is a skill the analysis believes the candidate has without
// direct evidence.
type InferredSkill struct {
	Skill      string `json:"skill"`
	Reasoning  string `json:"reasoning"`
	Confidence string `json:"confidence"`
}

// SkillsAnalysis is the enriched skills picture for one evaluation.
type SkillsAnalysis struct {
	CandidateSkills       []CandidateSkill `json:"candidate_skills"`
	RequiredSkills        []RequiredSkill  `json:"required_skills"`
	Matches               []SkillMatch     `json:"skill_matches"`
	MissingCriticalSkills []string         `json:"missing_critical_skills"`
	InferredSkills        []InferredSkill  `json:"inferred_skills"`
}

// CriterionScore is one scored dimension of an elite evaluation.
type CriterionScore struct {
	Score     float64  `json:"score"`
	Matches   []string `json:"matches,omitempty"`
	Gaps      []string `json:"gaps,omitempty"`
	Reasoning string   `json:"reasoning"`
}

// OverallEliteScore summarizes the elite evaluation.
type OverallEliteScore struct {
	Score          float64  `json:"score"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Recommendation string   `json:"recommendation"`
}

// EliteEvaluation is the candidate's standing against smart criteria.
type EliteEvaluation struct {
	MissionCriticalSkills CriterionScore    `json:"mission_critical_skills_score"`
	EliteCompanyBenchmark CriterionScore    `json:"elite_company_benchmark_score"`
	ExpectedOutcomes      CriterionScore    `json:"expected_outcomes_score"`
	DomainMastery         CriterionScore    `json:"domain_mastery_score"`
	Leadership            CriterionScore    `json:"leadership_score"`
	Overall               OverallEliteScore `json:"overall_elite_score"`
}

// Enricher is the enrichment capability contract. Implementations never
// return errors: the insight-backed variant degrades to the local heuristic
// internally, so callers always receive a usable value.
type Enricher interface {
	DetectContext(ctx context.Context, jobDescription, resumeText string) Context
	GenerateCriteria(ctx context.Context, jobDescription string, jobCtx Context) Criteria
	AnalyzeSkills(ctx context.Context, resumeText, jobDescription string) SkillsAnalysis
	EvaluateElite(ctx context.Context, resumeText string, criteria Criteria) EliteEvaluation
	// SuggestWeights returns a weight vector and whether one was produced;
	// false means the caller should resolve weights locally.
	SuggestWeights(ctx context.Context, jobCtx Context, criteria Criteria) (weights.Vector, bool)
	// Enhanced reports whether this enricher is insight-backed.
	Enhanced() bool
}
