package fitscore

import (
	"github.com/jyotidabass/fitscore-calculator/internal/enrich"
	"github.com/jyotidabass/fitscore-calculator/internal/weights"
)

// Result is the full evaluation output for one candidate/job pair.
type Result struct {
	ID                       string   `json:"id"`
	TotalScore               float64  `json:"total_score"`
	EducationScore           float64  `json:"education_score"`
	CareerTrajectoryScore    float64  `json:"career_trajectory_score"`
	CompanyRelevanceScore    float64  `json:"company_relevance_score"`
	TenureStabilityScore     float64  `json:"tenure_stability_score"`
	MostImportantSkillsScore float64  `json:"most_important_skills_score"`
	BonusSignalsScore        float64  `json:"bonus_signals_score"`
	RedFlagsPenalty          float64  `json:"red_flags_penalty"`
	Submittable              bool     `json:"submittable"`
	Recommendations          []string `json:"recommendations"`
	Details                  Details  `json:"details"`
	Timestamp                string   `json:"timestamp"`
}

// Details carries the per-component breakdowns plus the enrichment payloads
// that explain how every number was produced.
type Details struct {
	Education           EducationDetails       `json:"education"`
	CareerTrajectory    TrajectoryDetails      `json:"career_trajectory"`
	CompanyRelevance    CompanyDetails         `json:"company_relevance"`
	TenureStability     TenureDetails          `json:"tenure_stability"`
	MostImportantSkills SkillsDetails          `json:"most_important_skills"`
	BonusSignals        BonusDetails           `json:"bonus_signals"`
	RedFlags            RedFlagDetails         `json:"red_flags"`
	WeightsUsed         weights.Vector         `json:"weights_used"`
	ContextDetection    enrich.Context         `json:"context_detection"`
	SmartCriteria       enrich.Criteria        `json:"smart_criteria"`
	SkillsAnalysis      enrich.SkillsAnalysis  `json:"skills_analysis"`
	EliteEvaluation     enrich.EliteEvaluation `json:"elite_evaluation"`
	InsightEnhanced     bool                   `json:"insight_enhanced"`
}

// ScoredInstitution is one education entry with its tier placement.
type ScoredInstitution struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	Score       float64 `json:"score"`
	Tier        string  `json:"tier"`
}

type EducationDetails struct {
	Institutions []ScoredInstitution `json:"institutions"`
	TotalScore   float64             `json:"total_score"`
	Tier         string              `json:"tier"`
	Strengths    []string            `json:"strengths"`
	Concerns     []string            `json:"concerns"`
}

// ScoredPosition is one role with the progression signals it contributed.
type ScoredPosition struct {
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	Duration   string  `json:"duration"`
	Score      float64 `json:"score"`
	Leadership bool    `json:"leadership"`
	Scope      bool    `json:"scope"`
	Ownership  bool    `json:"ownership"`
	Complexity bool    `json:"complexity"`
}

type TrajectoryDetails struct {
	Positions           []ScoredPosition `json:"positions"`
	ProgressionPattern  string           `json:"progression_pattern"`
	ProgressionLevel    string           `json:"progression_level"`
	LeadershipRoles     int              `json:"leadership_roles"`
	ScopeIncreases      int              `json:"scope_increases"`
	OwnershipIndicators int              `json:"ownership_indicators"`
	ComplexityGrowth    int              `json:"complexity_growth"`
	Score               float64          `json:"score"`
	Error               string           `json:"error,omitempty"`
}

type ScoredCompany struct {
	Company        string  `json:"company"`
	Role           string  `json:"role"`
	RelevanceScore float64 `json:"relevance_score"`
}

type CompanyDetails struct {
	RoleType          string          `json:"role_type"`
	TargetCompanyType string          `json:"target_company_type"`
	Companies         []ScoredCompany `json:"companies"`
	RelevanceScore    float64         `json:"relevance_score"`
	Error             string          `json:"error,omitempty"`
}

type TenurePosition struct {
	Company        string  `json:"company"`
	Title          string  `json:"title"`
	TenureYears    float64 `json:"tenure_years"`
	IsEliteCompany bool    `json:"is_elite_company"`
}

type ExcludedPosition struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Reason   string `json:"reason"`
}

type TenureDetails struct {
	Positions          []TenurePosition   `json:"positions"`
	ExcludedPositions  []ExcludedPosition `json:"excluded_positions"`
	AverageTenure      float64            `json:"average_tenure"`
	TenurePattern      string             `json:"tenure_pattern"`
	TenureLevel        string             `json:"tenure_level"`
	InternshipCount    int                `json:"internship_count"`
	EliteCompanyTenure float64            `json:"elite_company_tenure"`
	EliteTenureBonus   float64            `json:"elite_tenure_bonus,omitempty"`
	InternshipBonus    float64            `json:"internship_bonus,omitempty"`
	StabilityScore     float64            `json:"stability_score"`
	Error              string             `json:"error,omitempty"`
}

type SkillsDetails struct {
	RequiredSkills  []string `json:"required_skills"`
	CandidateSkills []string `json:"candidate_skills"`
	Matches         []string `json:"matches"`
	Missing         []string `json:"missing"`
	MatchPercentage float64  `json:"match_percentage"`
	Score           float64  `json:"score"`
	Error           string   `json:"error,omitempty"`
}

type BonusDetails struct {
	SignalsFound []string `json:"signals_found"`
	TotalScore   float64  `json:"total_score"`
}

type RedFlagDetails struct {
	FlagsFound []string `json:"flags_found"`
	Penalty    float64  `json:"penalty"`
}
