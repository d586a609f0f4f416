package extract

import (
	"regexp"
	"sort"
	"strings"
)

// WorkExperienceEntry is one position pulled from a resume. Duration holds
// the raw matched text; EndYear is derived from it for recency ordering and
// is zero when the position is current or the duration is unreadable.
type WorkExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	EndYear     int    `json:"end_year,omitempty"`
}

// Look-ahead windows for the line scanner. After a title line is found the
// next companyWindow lines are searched for a company and a duration, and
// the next descriptionWindow lines are scanned for bullet description text.
const (
	companyWindow     = 4
	descriptionWindow = 9
)

var (
	titleWords = []string{
		"engineer", "manager", "director", "analyst", "developer",
		"consultant", "lead", "senior", "principal", "staff",
	}
	companyIndicators = []string{
		"inc", "corp", "llc", "ltd", "company", "google", "microsoft",
		"amazon", "apple", "meta", "ibm", "oracle",
	}
	sectionWords = []string{"experience", "education", "skills", "bonus"}

	durationPattern = regexp.MustCompile(`\d{4}-\d{4}|\(\d+\s+years?\)|\(\d+\s+months?\)`)
	endYearPattern  = regexp.MustCompile(`\d{4}-(\d{4})`)
)

// scanState names the phases the experience scanner moves through for each
// position. The scanner itself is a single pass over the line sequence;
// the company, duration and description searches are bounded look-aheads
// from the title line.
type scanState int

const (
	seekingTitle scanState = iota
	seekingCompany
	seekingDuration
	collectingDescription
)

// WorkExperience extracts positions from resume text. Any line containing a
// title keyword starts a position; extraction output follows document
// order. Bullet lines are scanned like any other, so a description bullet
// naming a role keyword produces its own (sparse) entry; callers relying
// on tenure or company facts tolerate these because they carry no duration.
func WorkExperience(resumeText string) []WorkExperienceEntry {
	lines := strings.Split(resumeText, "\n")

	var entries []WorkExperienceEntry
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if !isTitleLine(line) {
			continue
		}

		entry := WorkExperienceEntry{
			Title:    line,
			Company:  "Unknown Company",
			Duration: UnknownValue,
		}

		state := seekingCompany
		for _, next := range window(lines, i+1, companyWindow) {
			if state != seekingCompany {
				break
			}
			if next == "" || isSectionLine(next) {
				continue
			}
			if hasCompanyIndicator(next) {
				entry.Company = next
				state = seekingDuration
			}
		}

		for _, next := range window(lines, i+1, companyWindow) {
			if durationPattern.MatchString(next) {
				entry.Duration = next
				break
			}
		}

		var descLines []string
		for _, next := range window(lines, i+1, descriptionWindow) {
			if strings.HasPrefix(next, "-") || strings.HasPrefix(next, "•") {
				descLines = append(descLines, next)
				continue
			}
			if next != "" {
				// Any non-bullet content, section headers included,
				// ends the description block.
				break
			}
		}
		entry.Description = strings.Join(descLines, " ")
		entry.EndYear = endYear(entry.Duration)

		entries = append(entries, entry)
	}

	return entries
}

// SortMostRecentFirst orders positions by derived end year, newest first.
// Positions without a parsable end year are treated as current. The sort is
// stable, so document order breaks ties.
func SortMostRecentFirst(entries []WorkExperienceEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return sortKey(entries[i].EndYear) > sortKey(entries[j].EndYear)
	})
}

func sortKey(endYear int) int {
	if endYear == 0 {
		return int(^uint(0) >> 1)
	}
	return endYear
}

// window returns the trimmed lines in [start, start+size), clipped to the
// end of the document.
func window(lines []string, start, size int) []string {
	end := start + size
	if end > len(lines) {
		end = len(lines)
	}
	if start >= len(lines) {
		return nil
	}

	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

func isTitleLine(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range titleWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func isSectionLine(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range sectionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func hasCompanyIndicator(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range companyIndicators {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func endYear(duration string) int {
	m := endYearPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}
	year := 0
	for _, c := range m[1] {
		year = year*10 + int(c-'0')
	}
	return year
}
