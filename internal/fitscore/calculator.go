package fitscore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jyotidabass/fitscore-calculator/internal/enrich"
	"github.com/jyotidabass/fitscore-calculator/internal/metrics"
	"github.com/jyotidabass/fitscore-calculator/internal/tables"
	"github.com/jyotidabass/fitscore-calculator/internal/weights"
	"github.com/jyotidabass/fitscore-calculator/pkg/logger"
	"github.com/jyotidabass/fitscore-calculator/pkg/utils"
)

// Calculator runs the full evaluation pipeline. It is safe for concurrent
// use: the tables are immutable and the enrichers keep no per-call state.
type Calculator struct {
	tables  *tables.Tables
	insight enrich.Enricher
	local   enrich.Enricher
}

// Request is one evaluation job.
type Request struct {
	Resume         string
	JobDescription string
	Collateral     string
	CustomWeights  *weights.Vector
	UseInsight     bool
}

// NewCalculator wires the calculator. The insight enricher may be nil when
// the service is not configured; heuristics are used for every request.
func NewCalculator(t *tables.Tables, insight enrich.Enricher) *Calculator {
	return &Calculator{
		tables:  t,
		insight: insight,
		local:   enrich.NewLocalHeuristic(t),
	}
}

// Evaluate scores one candidate against one job description. It always
// returns a result; enrichment failures degrade to heuristics rather than
// failing the evaluation.
func (c *Calculator) Evaluate(ctx context.Context, req Request) *Result {
	start := time.Now()

	enricher := c.local
	mode := "heuristic"
	if req.UseInsight && c.insight != nil {
		enricher = c.insight
		mode = "insight"
	}

	logger.Info("Starting fitscore evaluation",
		zap.String("mode", mode),
		zap.String("resume_fingerprint", utils.Fingerprint(req.Resume)),
	)

	jobCtx := enricher.DetectContext(ctx, req.JobDescription, req.Resume)
	criteria := enricher.GenerateCriteria(ctx, req.JobDescription, jobCtx)

	w, suggested := weights.Vector{}, false
	if enricher.Enhanced() {
		w, suggested = enricher.SuggestWeights(ctx, jobCtx, criteria)
	}
	if suggested {
		w = w.Normalize()
	} else {
		w = weights.Resolve(req.CustomWeights, req.Collateral)
	}

	skillsAnalysis := enricher.AnalyzeSkills(ctx, req.Resume, req.JobDescription)
	eliteEval := enricher.EvaluateElite(ctx, req.Resume, criteria)

	educationScore, educationDetails := ScoreEducation(c.tables, req.Resume, req.JobDescription)
	careerScore, careerDetails := ScoreCareerTrajectory(c.tables, req.Resume, req.JobDescription)
	companyScore, companyDetails := ScoreCompanyRelevance(c.tables, req.Resume, req.JobDescription)
	tenureScore, tenureDetails := ScoreTenureStability(c.tables, req.Resume, req.JobDescription)
	skillsScore, skillsDetails := ScoreSkills(c.tables, req.Resume, req.JobDescription)
	bonusScore, bonusDetails := ScoreBonusSignals(c.tables, req.Resume, req.JobDescription)
	redFlagsPenalty, redFlagDetails := ScoreRedFlags(c.tables, req.Resume, req.JobDescription)

	total := educationScore*w.Education +
		careerScore*w.CareerTrajectory +
		companyScore*w.CompanyRelevance +
		tenureScore*w.TenureStability +
		skillsScore*w.MostImportantSkills +
		bonusScore*w.BonusSignals +
		redFlagsPenalty

	recommendations := Recommendations(
		total, educationScore, careerScore, companyScore,
		tenureScore, skillsScore, bonusScore, redFlagsPenalty,
	)

	result := &Result{
		ID:                       uuid.New().String(),
		TotalScore:               total,
		EducationScore:           educationScore,
		CareerTrajectoryScore:    careerScore,
		CompanyRelevanceScore:    companyScore,
		TenureStabilityScore:     tenureScore,
		MostImportantSkillsScore: skillsScore,
		BonusSignalsScore:        bonusScore,
		RedFlagsPenalty:          redFlagsPenalty,
		Submittable:              total >= SubmittableThreshold,
		Recommendations:          recommendations,
		Timestamp:                time.Now().UTC().Format(time.RFC3339),
		Details: Details{
			Education:           educationDetails,
			CareerTrajectory:    careerDetails,
			CompanyRelevance:    companyDetails,
			TenureStability:     tenureDetails,
			MostImportantSkills: skillsDetails,
			BonusSignals:        bonusDetails,
			RedFlags:            redFlagDetails,
			WeightsUsed:         w,
			ContextDetection:    jobCtx,
			SmartCriteria:       criteria,
			SkillsAnalysis:      skillsAnalysis,
			EliteEvaluation:     eliteEval,
			InsightEnhanced:     enricher.Enhanced(),
		},
	}

	observeResult(mode, result, time.Since(start))

	logger.Info("Fitscore evaluation completed",
		zap.String("id", result.ID),
		zap.Float64("total_score", result.TotalScore),
		zap.Bool("submittable", result.Submittable),
		zap.Duration("duration", time.Since(start)),
	)

	return result
}

func observeResult(mode string, r *Result, elapsed time.Duration) {
	metrics.EvaluationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	metrics.EvaluationTotal.WithLabelValues(fmt.Sprintf("%t", r.Submittable)).Inc()
	metrics.TotalScore.Observe(r.TotalScore)
	metrics.RedFlagPenalty.Observe(r.RedFlagsPenalty)

	metrics.ComponentScore.WithLabelValues("education").Observe(r.EducationScore)
	metrics.ComponentScore.WithLabelValues("career_trajectory").Observe(r.CareerTrajectoryScore)
	metrics.ComponentScore.WithLabelValues("company_relevance").Observe(r.CompanyRelevanceScore)
	metrics.ComponentScore.WithLabelValues("tenure_stability").Observe(r.TenureStabilityScore)
	metrics.ComponentScore.WithLabelValues("most_important_skills").Observe(r.MostImportantSkillsScore)
	metrics.ComponentScore.WithLabelValues("bonus_signals").Observe(r.BonusSignalsScore)
}
