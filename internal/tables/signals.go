package tables

import "strings"

// Keyword sets driving the trajectory, bonus-signal and red-flag scorers.
// These are fixed vocabulary, not per-tenant configuration.

var leadershipTitleWords = []string{
	"manager", "director", "lead", "head", "chief", "vp", "cto", "ceo",
	"principal", "staff",
}

var scopeWords = []string{
	"team", "budget", "revenue", "strategy", "architect", "cross-functional",
	"stakeholder",
}

var ownershipWords = []string{
	"owned", "led", "managed", "responsible for", "delivered", "launched",
	"improved",
}

var complexityWords = []string{
	"scalable", "distributed", "microservices", "architecture",
	"system design", "technical leadership",
}

// ExceptionalSignals are worth 5 bonus points each, StrongSignals 3, and
// SomeSignals 1; each keyword counts once no matter how often it appears.
var (
	ExceptionalSignals = []string{
		"patent", "published", "forbes", "founder", "board", "olympic",
		"military", "ted talk", "book", "award", "media coverage",
	}
	StrongSignals = []string{
		"open source", "speaking", "teaching", "certification",
		"hackathon", "leadership", "volunteer", "side project",
	}
	SomeSignals = []string{
		"portfolio", "community", "course", "competition", "language",
	}
)

// Red-flag keyword sets: -15 per major, -10 per moderate, -5 per minor.
var (
	MajorFlags = []string{
		"falsified", "plagiarized", "criminal", "ethical violation",
		"diploma mill", "unaccredited",
	}
	ModerateFlags = []string{
		"job hopping", "employment gap", "no progression",
		"short tenure", "concerning pattern",
	}
	MinorFlags = []string{
		"overqualified", "location mismatch", "missing certification",
	}
)

// ScoreTitleSeniority maps a job title onto the fixed seniority ladder.
func ScoreTitleSeniority(title string) float64 {
	lower := strings.ToLower(title)

	switch {
	case containsAny(lower, "ceo", "cto", "cfo", "vp", "director"):
		return 9.0
	case containsAny(lower, "senior", "lead", "principal"):
		return 7.0
	case containsAny(lower, "manager", "supervisor"):
		return 6.0
	case containsAny(lower, "engineer", "analyst", "developer"):
		return 5.0
	}
	return 3.0
}

// HasLeadershipTitle reports a leadership indicator in a position title.
func HasLeadershipTitle(title string) bool {
	return containsAny(strings.ToLower(title), leadershipTitleWords...)
}

// HasScopeIndicator reports a scope/responsibility indicator in a position
// description.
func HasScopeIndicator(description string) bool {
	return containsAny(strings.ToLower(description), scopeWords...)
}

// HasOwnershipIndicator reports an ownership indicator in a position
// description.
func HasOwnershipIndicator(description string) bool {
	return containsAny(strings.ToLower(description), ownershipWords...)
}

// HasComplexityIndicator reports a technical-complexity indicator in a
// position description.
func HasComplexityIndicator(description string) bool {
	return containsAny(strings.ToLower(description), complexityWords...)
}
