// Package extract parses raw resume text into structured education and
// work-experience facts. Extraction is heuristic and line-oriented; empty
// results are normal and left to the scorers to handle.
package extract

import "regexp"

// EducationEntry is one education fact pulled from a resume. DegreeType and
// Institution may be "Unknown" depending on which pattern produced the entry.
type EducationEntry struct {
	Institution string `json:"institution"`
	DegreeType  string `json:"degree_type"`
	Field       string `json:"field"`
}

// UnknownValue marks fields the extractor could not determine.
const UnknownValue = "Unknown"

var (
	institutionPattern = regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s&]+(?:University|College|Institute|School))`)
	degreePattern      = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|MBA|MS|BS|BA)\s+(?:of|in)?\s+([A-Za-z\s]+)`)
)

// Education extracts education entries from resume text. Two independent
// pattern families run over the full text: institution-suffix phrases and
// degree-keyword phrases. Every match yields its own entry; entries are
// never merged across families, so a resume naming one school and one
// degree produces two loosely related entries. That noise is part of the
// extraction contract and is preserved deliberately.
func Education(resumeText string) []EducationEntry {
	var entries []EducationEntry

	for _, m := range institutionPattern.FindAllStringSubmatch(resumeText, -1) {
		entries = append(entries, EducationEntry{
			Institution: m[1],
			DegreeType:  UnknownValue,
			Field:       "General",
		})
	}

	for _, m := range degreePattern.FindAllStringSubmatch(resumeText, -1) {
		entries = append(entries, EducationEntry{
			Institution: UnknownValue,
			DegreeType:  m[1],
			Field:       m[2],
		})
	}

	return entries
}
