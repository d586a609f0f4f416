package fitscore

// Decision thresholds. A candidate clears the bar at 8.2; any component
// under 6.0 earns a concern line; a raw penalty below -5.0 flags review.
const (
	SubmittableThreshold = 8.2
	concernThreshold     = 6.0
	redFlagThreshold     = -5.0
)

// Recommendations produces the fixed, ordered recommendation list for the
// component scores. The verdict line always comes first.
func Recommendations(total, education, career, company, tenure, skills, bonus, redFlags float64) []string {
	recs := make([]string, 0, 7)

	if total >= SubmittableThreshold {
		recs = append(recs, "SUBMITTABLE CANDIDATE - Recommend to submit")
	} else {
		recs = append(recs, "RECOMMENDED REJECT - Below elite hiring bar")
	}

	if education < concernThreshold {
		recs = append(recs, "Education concerns - consider program strength and relevance")
	}
	if career < concernThreshold {
		recs = append(recs, "Career trajectory concerns - limited progression visible")
	}
	if company < concernThreshold {
		recs = append(recs, "Company relevance concerns - may not fit target environment")
	}
	if tenure < concernThreshold {
		recs = append(recs, "Tenure stability concerns - frequent job changes")
	}
	if skills < concernThreshold {
		recs = append(recs, "Skills gap - missing critical capabilities")
	}
	if redFlags < redFlagThreshold {
		recs = append(recs, "Red flags detected - requires careful review")
	}

	return recs
}
