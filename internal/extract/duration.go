package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	parenYearsPattern = regexp.MustCompile(`\((\d+(?:\.\d+)?)\s+years?\)`)
	yearRangePattern  = regexp.MustCompile(`(\d{4})-(\d{4})`)
	bareYearsPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+years?`)
	bareMonthsPattern = regexp.MustCompile(`(\d+)\s+months?`)
	bareNumberPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
)

// TenureYears converts a raw duration string into years. Patterns are tried
// in a fixed order: "(N years)", "YYYY-YYYY", "N years", "N months", then a
// bare number. A duration that matches nothing still counts as one year; an
// empty or Unknown duration counts as zero (the position carries no tenure
// signal at all).
func TenureYears(duration string) float64 {
	if duration == "" || duration == UnknownValue {
		return 0.0
	}

	lower := strings.ToLower(duration)

	if m := parenYearsPattern.FindStringSubmatch(lower); m != nil {
		years, _ := strconv.ParseFloat(m[1], 64)
		return years
	}

	if m := yearRangePattern.FindStringSubmatch(duration); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		return float64(end - start)
	}

	if m := bareYearsPattern.FindStringSubmatch(lower); m != nil {
		years, _ := strconv.ParseFloat(m[1], 64)
		return years
	}

	if m := bareMonthsPattern.FindStringSubmatch(lower); m != nil {
		months, _ := strconv.Atoi(m[1])
		return float64(months) / 12.0
	}

	if m := bareNumberPattern.FindStringSubmatch(strings.TrimSpace(duration)); m != nil {
		years, _ := strconv.ParseFloat(m[1], 64)
		return years
	}

	return 1.0
}
