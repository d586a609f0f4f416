// Package weights resolves the factor weight vector used to aggregate
// component scores. Resolution order: an externally supplied vector (if it
// validates), otherwise the defaults adjusted by at most one collateral
// branch, always renormalized so the six positive weights sum to 1.0. The
// red-flags weight is a penalty marker, never part of the sum.
package weights

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Vector maps the seven scoring factors to their weights. The six positive
// weights sum to 1.0; RedFlags is carried for reporting but the red-flag
// penalty is applied additively, not multiplied by it.
type Vector struct {
	Education           float64 `json:"education"`
	CareerTrajectory    float64 `json:"career_trajectory"`
	CompanyRelevance    float64 `json:"company_relevance"`
	TenureStability     float64 `json:"tenure_stability"`
	MostImportantSkills float64 `json:"most_important_skills"`
	BonusSignals        float64 `json:"bonus_signals"`
	RedFlags            float64 `json:"red_flags"`
}

// SumTolerance bounds the acceptable deviation of an external vector's
// positive sum from 1.0 before it is rejected.
const SumTolerance = 0.01

var errNonPositive = errors.New("weights must be positive")

// Default returns the base weight vector.
func Default() Vector {
	return Vector{
		Education:           0.20,
		CareerTrajectory:    0.20,
		CompanyRelevance:    0.15,
		TenureStability:     0.15,
		MostImportantSkills: 0.20,
		BonusSignals:        0.05,
		RedFlags:            -0.15,
	}
}

// Resolve produces the weight vector for one evaluation. A valid custom
// vector wins over local derivation; collateral adjustment only applies on
// the local path. The result is always normalized.
func Resolve(custom *Vector, collateral string) Vector {
	if custom != nil {
		if err := custom.Validate(); err == nil {
			return custom.Normalize()
		}
	}

	v := Default()
	if collateral != "" {
		v = v.AdjustForCollateral(collateral)
	}
	return v.Normalize()
}

// AdjustForCollateral applies at most one of three mutually exclusive
// keyword-triggered shifts; branches are checked in order and the first
// match wins.
func (v Vector) AdjustForCollateral(collateral string) Vector {
	lower := strings.ToLower(collateral)

	switch {
	case strings.Contains(lower, "startup") || strings.Contains(lower, "early-stage"):
		// Startups weigh demonstrated skills and environment fit over
		// pedigree and tenure.
		v.MostImportantSkills += 0.05
		v.CompanyRelevance += 0.05
		v.Education -= 0.05
		v.TenureStability -= 0.05
	case strings.Contains(lower, "enterprise") || strings.Contains(lower, "large company"):
		v.Education += 0.05
		v.TenureStability += 0.05
		v.MostImportantSkills -= 0.05
		v.CompanyRelevance -= 0.05
	case strings.Contains(lower, "leadership") || strings.Contains(lower, "management"):
		v.CareerTrajectory += 0.05
		v.BonusSignals += 0.02
		v.MostImportantSkills -= 0.07
	}

	return v
}

// PositiveSum returns the sum of the six non-penalty weights.
func (v Vector) PositiveSum() float64 {
	return v.Education + v.CareerTrajectory + v.CompanyRelevance +
		v.TenureStability + v.MostImportantSkills + v.BonusSignals
}

// Normalize scales the six positive weights so they sum to exactly 1.0.
// The red-flags weight is untouched.
func (v Vector) Normalize() Vector {
	sum := v.PositiveSum()
	if sum == 0 {
		return Default().Normalize()
	}

	v.Education /= sum
	v.CareerTrajectory /= sum
	v.CompanyRelevance /= sum
	v.TenureStability /= sum
	v.MostImportantSkills /= sum
	v.BonusSignals /= sum
	return v
}

// Validate rejects vectors an external caller or the insight service cannot
// be trusted with: non-positive factor weights or a positive sum away from
// 1.0 beyond tolerance.
func (v Vector) Validate() error {
	positives := []float64{
		v.Education, v.CareerTrajectory, v.CompanyRelevance,
		v.TenureStability, v.MostImportantSkills, v.BonusSignals,
	}
	for _, w := range positives {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errNonPositive
		}
	}

	if diff := math.Abs(v.PositiveSum() - 1.0); diff > SumTolerance {
		return fmt.Errorf("positive weights sum to %.4f, want 1.0", v.PositiveSum())
	}
	return nil
}
