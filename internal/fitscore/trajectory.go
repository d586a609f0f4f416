package fitscore

import (
	"github.com/jyotidabass/fitscore-calculator/internal/extract"
	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

const (
	leadershipBonus = 2.0
	scopeBonus      = 1.5
	ownershipBonus  = 1.0
	complexityBonus = 1.0
)

// ScoreCareerTrajectory rates progression across positions, most recent
// first. Each position earns its title seniority plus fixed bonuses for
// leadership, scope, ownership and complexity signals; the pattern ladder
// then maps the three most recent position scores and the signal totals to
// a progression score.
func ScoreCareerTrajectory(t *tables.Tables, resumeText, jobDescription string) (float64, TrajectoryDetails) {
	experience := extract.WorkExperience(resumeText)

	if len(experience) == 0 {
		return 1.0, TrajectoryDetails{
			Positions: []ScoredPosition{},
			Score:     1.0,
			Error:     "No work experience found",
		}
	}

	extract.SortMostRecentFirst(experience)

	details := TrajectoryDetails{Positions: []ScoredPosition{}}

	positionScores := make([]float64, 0, len(experience))
	for _, pos := range experience {
		score := tables.ScoreTitleSeniority(pos.Title)

		leadership := tables.HasLeadershipTitle(pos.Title)
		if leadership {
			score += leadershipBonus
			details.LeadershipRoles++
		}
		scope := tables.HasScopeIndicator(pos.Description)
		if scope {
			score += scopeBonus
			details.ScopeIncreases++
		}
		ownership := tables.HasOwnershipIndicator(pos.Description)
		if ownership {
			score += ownershipBonus
			details.OwnershipIndicators++
		}
		complexity := tables.HasComplexityIndicator(pos.Description)
		if complexity {
			score += complexityBonus
			details.ComplexityGrowth++
		}

		positionScores = append(positionScores, score)
		details.Positions = append(details.Positions, ScoredPosition{
			Title:      pos.Title,
			Company:    pos.Company,
			Duration:   pos.Duration,
			Score:      score,
			Leadership: leadership,
			Scope:      scope,
			Ownership:  ownership,
			Complexity: complexity,
		})
	}

	var score float64
	if len(positionScores) >= 3 {
		score = progressionLadder(positionScores[:3], &details)
	} else {
		var sum float64
		for _, s := range positionScores {
			sum += s
		}
		avg := sum / float64(len(positionScores))
		switch {
		case avg >= 8.0:
			score = 8.0
		case avg >= 6.0:
			score = 6.0
		default:
			score = 4.0
		}
	}

	details.Score = score
	return score, details
}

// progressionLadder is evaluated top down; the first rung whose conditions
// hold wins.
func progressionLadder(recent []float64, details *TrajectoryDetails) float64 {
	switch {
	case recent[0] >= 9.0 && recent[1] >= 8.0 &&
		details.LeadershipRoles >= 2 && details.OwnershipIndicators >= 2:
		details.ProgressionPattern = "Exceptional progression with leadership and ownership"
		details.ProgressionLevel = "Exceptional (9.5-10.0)"
		return 9.5
	case recent[0] > recent[1] && recent[1] > recent[2] &&
		recent[0] >= 7.5 && details.LeadershipRoles >= 1:
		details.ProgressionPattern = "Clear upward progression with leadership"
		details.ProgressionLevel = "Clear Upward (9.0-9.4)"
		return 9.0
	case recent[0] > recent[2] && recent[0] >= 7.0 && details.ScopeIncreases >= 1:
		details.ProgressionPattern = "Strong progression with scope growth"
		details.ProgressionLevel = "Strong (8.0-8.9)"
		return 8.0
	case recent[0] >= 6.0 && details.OwnershipIndicators >= 1:
		details.ProgressionPattern = "Good progression with ownership"
		details.ProgressionLevel = "Good (7.0-7.9)"
		return 7.0
	case recent[0] >= 5.0:
		details.ProgressionPattern = "Steady progression"
		details.ProgressionLevel = "Steady (6.0-6.9)"
		return 6.0
	case recent[0] >= 4.0:
		details.ProgressionPattern = "Limited progression"
		details.ProgressionLevel = "Limited (4.0-5.9)"
		return 4.0
	default:
		details.ProgressionPattern = "No clear progression"
		details.ProgressionLevel = "No Progression (1.0-3.9)"
		return 1.0
	}
}
