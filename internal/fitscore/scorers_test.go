package fitscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

func TestScoreEducationTier1(t *testing.T) {
	tbl := tables.Default()
	resume := "Massachusetts Institute of Technology\nBachelor of Science in Computer Science"

	score, details := ScoreEducation(tbl, resume, "")

	assert.GreaterOrEqual(t, score, 9.0)
	assert.LessOrEqual(t, score, 10.0)
	// Both extraction families contribute entries to the breakdown.
	assert.Len(t, details.Institutions, 2)
	assert.Equal(t, "Tier 1 - Us Top15", details.Tier)
}

func TestScoreEducationGraduateBoost(t *testing.T) {
	tbl := tables.Default()
	resume := "Springfield University\nMaster of Business Administration"

	score, details := ScoreEducation(tbl, resume, "")

	// Generic institution 5.0 plus the 1.0 graduate boost.
	assert.InDelta(t, 6.0, score, 1e-9)
	assert.Contains(t, details.Strengths, "Graduate degree(s) present")
}

func TestScoreEducationNoEducation(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreEducation(tbl, "no credentials at all", "")

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Contains(t, details.Concerns, "No education information found")
	assert.Equal(t, "No Education", details.Tier)
}

func TestScoreEducationDegreeOnly(t *testing.T) {
	tbl := tables.Default()

	// Only the degree pattern fires; with no named institution the
	// degree-only entries themselves set the baseline.
	score, details := ScoreEducation(tbl, "Bachelor of Arts in History", "")

	assert.InDelta(t, 3.0, score, 1e-9)
	require.Len(t, details.Institutions, 1)
	assert.Equal(t, "Bachelor", details.Institutions[0].Degree)
}

func TestScoreEducationRange(t *testing.T) {
	tbl := tables.Default()
	resumes := []string{
		"",
		"Stanford University\nPhD in Physics",
		"Bootcamp Academy graduate",
		"Springfield College",
	}

	for _, resume := range resumes {
		score, _ := ScoreEducation(tbl, resume, "")
		assert.GreaterOrEqual(t, score, 1.0)
		assert.LessOrEqual(t, score, 10.0)
	}
}

func TestScoreCareerTrajectoryNoExperience(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreCareerTrajectory(tbl, "nothing here", "")

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, "No work experience found", details.Error)
}

func TestScoreCareerTrajectoryClearUpward(t *testing.T) {
	tbl := tables.Default()
	resume := "Director of Engineering\n" +
		"- Led team strategy and owned delivery of scalable microservices architecture\n" +
		"Google Inc.\n" +
		"2021-2024 (3 years)\n" +
		"\n" +
		"Senior Software Engineer\n" +
		"- Led cross-functional team projects and delivered distributed systems\n" +
		"Stripe Inc.\n" +
		"2018-2021 (3 years)\n" +
		"\n" +
		"Software Engineer\n" +
		"- Responsible for delivering scalable services\n" +
		"Amazon Inc.\n" +
		"2015-2018 (3 years)\n"

	score, details := ScoreCareerTrajectory(tbl, resume, "")

	assert.InDelta(t, 9.0, score, 1e-9)
	assert.Equal(t, "Clear upward progression with leadership", details.ProgressionPattern)
	assert.Equal(t, "Clear Upward (9.0-9.4)", details.ProgressionLevel)
	require.Len(t, details.Positions, 3)
	assert.Equal(t, 1, details.LeadershipRoles)
	assert.GreaterOrEqual(t, details.OwnershipIndicators, 2)
}

func TestScoreCareerTrajectoryFewPositions(t *testing.T) {
	tbl := tables.Default()

	score, _ := ScoreCareerTrajectory(tbl, "Senior Software Engineer\nAcme Corp\n(2 years)", "")

	// A single 7.0 position falls into the middle band.
	assert.InDelta(t, 6.0, score, 1e-9)
}

func TestScoreCompanyRelevance(t *testing.T) {
	tbl := tables.Default()
	resume := "Senior Software Engineer\nGoogle Inc.\n2020-2023 (3 years)"
	jd := "Software engineer for a Fortune 500 enterprise"

	score, details := ScoreCompanyRelevance(tbl, resume, jd)

	assert.InDelta(t, 9.0, score, 1e-9)
	assert.Equal(t, tables.RoleTechnical, details.RoleType)
	assert.Equal(t, tables.CompanyEnterprise, details.TargetCompanyType)
	require.Len(t, details.Companies, 1)
	assert.Equal(t, "Google Inc.", details.Companies[0].Company)
}

func TestScoreCompanyRelevanceNoExperience(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreCompanyRelevance(tbl, "nothing", "software engineer")

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, "No work experience found", details.Error)
}

func TestScoreTenureStabilityLadder(t *testing.T) {
	tbl := tables.Default()

	tests := []struct {
		duration string
		want     float64
		level    string
	}{
		{"(3 years)", 9.5, "Elite (9.5-10.0)"},
		{"(2 years)", 7.5, "Good (7.5-8.4)"},
		{"(1 year)", 5.5, "Some Hopping (5.5-6.4)"},
		{"(6 months)", 4.0, "Frequent Changes (4.0-5.4)"},
		{"(3 months)", 1.0, "Very Short (1.0-3.9)"},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			resume := "Software Engineer\nAcme Corp\n" + tt.duration
			score, details := ScoreTenureStability(tbl, resume, "")
			assert.InDelta(t, tt.want, score, 1e-9)
			assert.Equal(t, tt.level, details.TenureLevel)
		})
	}
}

func TestScoreTenureStabilityExcludesInternships(t *testing.T) {
	tbl := tables.Default()
	resume := "Software Engineer\n" +
		"Acme Corp\n" +
		"(2 years)\n" +
		"\n" +
		"Software Engineering Intern\n" +
		"BigCo Inc\n" +
		"(4 years)\n"

	score, details := ScoreTenureStability(tbl, resume, "")

	// The intern position never enters the average no matter how long
	// its listed duration is.
	assert.InDelta(t, 7.5, score, 1e-9)
	assert.InDelta(t, 2.0, details.AverageTenure, 1e-9)
	require.Len(t, details.ExcludedPositions, 1)
	assert.Equal(t, "Software Engineering Intern", details.ExcludedPositions[0].Position)
	assert.Equal(t, 1, details.InternshipCount)
}

func TestScoreTenureStabilityEliteBonus(t *testing.T) {
	tbl := tables.Default()
	resume := "Senior Software Engineer\nGoogle Inc.\n2020-2023 (3 years)"

	score, details := ScoreTenureStability(tbl, resume, "")

	// 9.5 base plus min(0.5, 3.0 * 0.1) elite tenure bonus.
	assert.InDelta(t, 9.8, score, 1e-9)
	assert.InDelta(t, 0.3, details.EliteTenureBonus, 1e-9)
	assert.InDelta(t, 3.0, details.EliteCompanyTenure, 1e-9)
}

func TestScoreTenureStabilityNoValidPositions(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreTenureStability(tbl, "Software Engineering Intern\nBigCo Inc\n(1 year)", "")

	assert.InDelta(t, 1.0, score, 1e-9)
	assert.Equal(t, "No valid full-time positions found", details.Error)
}

func TestScoreSkillsBands(t *testing.T) {
	tbl := tables.Default()
	jd := "Needs python java react aws docker"

	tests := []struct {
		name   string
		resume string
		want   float64
	}{
		{"all five", "python java react aws docker", 9.0},
		{"four of five", "python java react docker", 7.5},
		{"three of five", "python java react", 4.0},
		{"one of five", "python only", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, details := ScoreSkills(tbl, tt.resume, jd)
			assert.InDelta(t, tt.want, score, 1e-9)
			assert.Len(t, details.RequiredSkills, 5)
		})
	}
}

func TestScoreSkillsNoRequiredSkills(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreSkills(tbl, "python java", "friendly workplace")

	assert.InDelta(t, 5.0, score, 1e-9)
	assert.Equal(t, "No required skills identified", details.Error)
}

func TestScoreSkillsValueSet(t *testing.T) {
	tbl := tables.Default()
	allowed := map[float64]bool{1.0: true, 4.0: true, 5.0: true, 6.0: true, 7.5: true, 9.0: true}

	inputs := []struct{ resume, jd string }{
		{"python", "python java react"},
		{"python java react", "python java react"},
		{"", "python"},
		{"anything", "nothing relevant"},
	}

	for _, in := range inputs {
		score, _ := ScoreSkills(tbl, in.resume, in.jd)
		assert.True(t, allowed[score], "unexpected skills score %v", score)
	}
}

func TestScoreBonusSignalsCap(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreBonusSignals(tbl, "Holds a patent, published author, founder, award winner", "")

	assert.InDelta(t, 5.0, score, 1e-9)
	assert.GreaterOrEqual(t, len(details.SignalsFound), 4)
}

func TestScoreBonusSignalsTiers(t *testing.T) {
	tbl := tables.Default()

	score, details := ScoreBonusSignals(tbl, "Maintains an open source portfolio", "")

	// One strong signal (3.0) plus one some signal (1.0).
	assert.InDelta(t, 4.0, score, 1e-9)
	assert.Contains(t, details.SignalsFound, "Strong: open source")
	assert.Contains(t, details.SignalsFound, "Some: portfolio")
}

func TestScoreRedFlags(t *testing.T) {
	tbl := tables.Default()

	penalty, details := ScoreRedFlags(tbl, "History shows plagiarized work and job hopping", "")

	// One major (-15) plus one moderate (-10).
	assert.InDelta(t, -25.0, penalty, 1e-9)
	assert.Contains(t, details.FlagsFound, "Major: plagiarized")
	assert.Contains(t, details.FlagsFound, "Moderate: job hopping")
}

func TestScoreRedFlagsClean(t *testing.T) {
	tbl := tables.Default()

	penalty, details := ScoreRedFlags(tbl, "A spotless record", "")

	assert.Zero(t, penalty)
	assert.Empty(t, details.FlagsFound)
}
