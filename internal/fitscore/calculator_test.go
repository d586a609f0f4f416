package fitscore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotidabass/fitscore-calculator/internal/tables"
	"github.com/jyotidabass/fitscore-calculator/internal/weights"
)

const enterpriseJD = "Senior Software Engineer role at a Fortune 500 enterprise. Requirements: python, react, aws."

const strongResume = `Jane Doe

Education
Massachusetts Institute of Technology
Master of Science in Computer Science

Experience

Director of Engineering
- Led team strategy and owned delivery of scalable microservices architecture
Google Inc.
2021-2024 (3 years)

Senior Software Engineer
- Led cross-functional team projects and delivered distributed systems
Stripe Inc.
2018-2021 (3 years)

Software Engineer
- Responsible for delivering scalable services
Amazon Inc.
2015-2018 (3 years)

Skills: python, react, aws`

const singlePositionResume = `Massachusetts Institute of Technology
Bachelor of Science in Computer Science

Senior Software Engineer
Google Inc.
2020-2023 (3 years)

Skills: python, react, aws`

func newTestCalculator() *Calculator {
	return NewCalculator(tables.Default(), nil)
}

func TestEvaluateStrongCandidateSubmittable(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Evaluate(context.Background(), Request{
		Resume:         strongResume,
		JobDescription: enterpriseJD,
	})

	assert.GreaterOrEqual(t, result.EducationScore, 9.0)
	assert.GreaterOrEqual(t, result.TenureStabilityScore, 9.5)
	assert.GreaterOrEqual(t, result.MostImportantSkillsScore, 6.0)
	assert.InDelta(t, 9.0, result.CareerTrajectoryScore, 1e-9)

	assert.True(t, result.Submittable)
	assert.GreaterOrEqual(t, result.TotalScore, SubmittableThreshold)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "SUBMITTABLE CANDIDATE - Recommend to submit", result.Recommendations[0])

	assert.False(t, result.Details.InsightEnhanced)
	assert.InDelta(t, 1.0, result.Details.WeightsUsed.PositiveSum(), 1e-6)
}

func TestEvaluateSinglePositionScenario(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Evaluate(context.Background(), Request{
		Resume:         singlePositionResume,
		JobDescription: enterpriseJD,
	})

	// Tier 1 education, elite three-year tenure, full skill overlap.
	assert.GreaterOrEqual(t, result.EducationScore, 9.0)
	assert.GreaterOrEqual(t, result.TenureStabilityScore, 9.5)
	assert.GreaterOrEqual(t, result.MostImportantSkillsScore, 6.0)

	// The verdict line is always first and consistent with the 8.2 gate.
	require.NotEmpty(t, result.Recommendations)
	if result.TotalScore >= SubmittableThreshold {
		assert.Equal(t, "SUBMITTABLE CANDIDATE - Recommend to submit", result.Recommendations[0])
		assert.True(t, result.Submittable)
	} else {
		assert.Equal(t, "RECOMMENDED REJECT - Below elite hiring bar", result.Recommendations[0])
		assert.False(t, result.Submittable)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	calc := newTestCalculator()
	req := Request{
		Resume:         strongResume,
		JobDescription: enterpriseJD,
		Collateral:     "startup environment",
	}

	first := calc.Evaluate(context.Background(), req)
	second := calc.Evaluate(context.Background(), req)

	// Identical except for the generated ID and timestamp.
	first.ID, second.ID = "", ""
	first.Timestamp, second.Timestamp = "", ""
	assert.Equal(t, first, second)
}

func TestEvaluateRedFlagScenario(t *testing.T) {
	calc := newTestCalculator()

	resume := strongResume + "\nReference check revealed plagiarized work and job hopping."
	clean := calc.Evaluate(context.Background(), Request{
		Resume:         strongResume,
		JobDescription: enterpriseJD,
	})
	flagged := calc.Evaluate(context.Background(), Request{
		Resume:         resume,
		JobDescription: enterpriseJD,
	})

	assert.InDelta(t, -25.0, flagged.RedFlagsPenalty, 1e-9)
	// The penalty lands on the total unweighted.
	assert.InDelta(t, clean.TotalScore-25.0, flagged.TotalScore, 0.5)
	assert.Contains(t, flagged.Recommendations, "Red flags detected - requires careful review")
	assert.False(t, flagged.Submittable)
}

func TestEvaluateStartupCollateralShiftsWeights(t *testing.T) {
	calc := newTestCalculator()

	base := calc.Evaluate(context.Background(), Request{
		Resume:         strongResume,
		JobDescription: enterpriseJD,
	})
	shifted := calc.Evaluate(context.Background(), Request{
		Resume:         strongResume,
		JobDescription: enterpriseJD,
		Collateral:     "early-stage startup, move fast",
	})

	assert.Greater(t, shifted.Details.WeightsUsed.MostImportantSkills, base.Details.WeightsUsed.MostImportantSkills)
	assert.Greater(t, shifted.Details.WeightsUsed.CompanyRelevance, base.Details.WeightsUsed.CompanyRelevance)
	assert.Less(t, shifted.Details.WeightsUsed.Education, base.Details.WeightsUsed.Education)
	assert.Less(t, shifted.Details.WeightsUsed.TenureStability, base.Details.WeightsUsed.TenureStability)
	assert.InDelta(t, 1.0, shifted.Details.WeightsUsed.PositiveSum(), 1e-6)
}

func TestEvaluateCustomWeights(t *testing.T) {
	calc := newTestCalculator()

	custom := &weights.Vector{
		Education:           0.30,
		CareerTrajectory:    0.20,
		CompanyRelevance:    0.10,
		TenureStability:     0.10,
		MostImportantSkills: 0.25,
		BonusSignals:        0.05,
		RedFlags:            -0.15,
	}

	result := calc.Evaluate(context.Background(), Request{
		Resume:         strongResume,
		JobDescription: enterpriseJD,
		CustomWeights:  custom,
	})

	assert.InDelta(t, 0.30, result.Details.WeightsUsed.Education, 1e-9)
	assert.InDelta(t, 1.0, result.Details.WeightsUsed.PositiveSum(), 1e-6)
}

func TestEvaluateWeakCandidateConcerns(t *testing.T) {
	calc := newTestCalculator()

	result := calc.Evaluate(context.Background(), Request{
		Resume:         "Retail associate at a local shop",
		JobDescription: enterpriseJD,
	})

	assert.False(t, result.Submittable)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "RECOMMENDED REJECT - Below elite hiring bar", result.Recommendations[0])

	joined := strings.Join(result.Recommendations, "\n")
	assert.Contains(t, joined, "Education concerns")
	assert.Contains(t, joined, "Career trajectory concerns")
	assert.Contains(t, joined, "Tenure stability concerns")
}

func TestEvaluateNeverFails(t *testing.T) {
	calc := newTestCalculator()

	inputs := []Request{
		{},
		{Resume: "\n\n\n"},
		{Resume: "x", JobDescription: "y"},
	}

	for _, req := range inputs {
		result := calc.Evaluate(context.Background(), req)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.ID)
		assert.NotEmpty(t, result.Recommendations)
	}
}
