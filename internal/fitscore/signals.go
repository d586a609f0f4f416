package fitscore

import (
	"fmt"
	"strings"

	"github.com/jyotidabass/fitscore-calculator/internal/tables"
)

const bonusCap = 5.0

// ScoreBonusSignals sums keyword bonuses found in the resume, capped at 5.0.
func ScoreBonusSignals(t *tables.Tables, resumeText, jobDescription string) (float64, BonusDetails) {
	details := BonusDetails{SignalsFound: []string{}}
	lower := strings.ToLower(resumeText)

	var total float64
	for _, signal := range tables.ExceptionalSignals {
		if strings.Contains(lower, signal) {
			total += 5.0
			details.SignalsFound = append(details.SignalsFound, fmt.Sprintf("Exceptional: %s", signal))
		}
	}
	for _, signal := range tables.StrongSignals {
		if strings.Contains(lower, signal) {
			total += 3.0
			details.SignalsFound = append(details.SignalsFound, fmt.Sprintf("Strong: %s", signal))
		}
	}
	for _, signal := range tables.SomeSignals {
		if strings.Contains(lower, signal) {
			total += 1.0
			details.SignalsFound = append(details.SignalsFound, fmt.Sprintf("Some: %s", signal))
		}
	}

	score := minF(bonusCap, total)
	details.TotalScore = score
	return score, details
}

// ScoreRedFlags sums keyword penalties found in the resume. The penalty is
// raw and uncapped; it enters the total unweighted.
func ScoreRedFlags(t *tables.Tables, resumeText, jobDescription string) (float64, RedFlagDetails) {
	details := RedFlagDetails{FlagsFound: []string{}}
	lower := strings.ToLower(resumeText)

	var penalty float64
	for _, flag := range tables.MajorFlags {
		if strings.Contains(lower, flag) {
			penalty -= 15.0
			details.FlagsFound = append(details.FlagsFound, fmt.Sprintf("Major: %s", flag))
		}
	}
	for _, flag := range tables.ModerateFlags {
		if strings.Contains(lower, flag) {
			penalty -= 10.0
			details.FlagsFound = append(details.FlagsFound, fmt.Sprintf("Moderate: %s", flag))
		}
	}
	for _, flag := range tables.MinorFlags {
		if strings.Contains(lower, flag) {
			penalty -= 5.0
			details.FlagsFound = append(details.FlagsFound, fmt.Sprintf("Minor: %s", flag))
		}
	}

	details.Penalty = penalty
	return penalty, details
}
