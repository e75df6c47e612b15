// Package textnorm cleans raw extracted text before scoring. Cleaning is
// pure string work: no I/O, no failure modes. Rules differ by document role,
// so every cleaned string is produced against an explicit Role.
package textnorm

import (
	"regexp"
	"strings"

	"resume-match/internal/phrase"
)

// Role tags which cleaning rules apply.
type Role int

const (
	RoleResume Role = iota
	RoleJob
)

var (
	boilerplateRe = regexp.MustCompile(`(?i)job description and resume \(100% match\)`)

	nameLineRe  = regexp.MustCompile(`(?i)name:.*?\n`)
	emailLineRe = regexp.MustCompile(`(?i)email:.*?\n`)
	phoneLineRe = regexp.MustCompile(`(?i)phone:.*?\n`)
	phoneNumRe  = regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)
	// Drops the generic "proven ability..." preamble up to the next section
	// header, keeping the sections that actually carry signal.
	preambleRe = regexp.MustCompile(`(?is)proven ability.*?(?:(skills|experience|education)|$)`)

	companyLineRe = regexp.MustCompile(`(?i)company:.*?\n|join our dynamic team|apply now|we are an equal opportunity`)

	whitespaceRe = regexp.MustCompile(`\s+`)

	resumeSectionRe = regexp.MustCompile(`(?is)(summary|skills|experience|work history|education|professional experience|certifications).*`)
	jobSectionRe    = regexp.MustCompile(`(?is)(job title|summary|responsibilities|requirements|qualifications):\s*(.*)`)
)

// Clean lowercases text, expands synonyms, strips boilerplate and
// role-specific noise, and collapses whitespace. Synonym expansion is literal
// substring replacement (see phrase.Synonyms); the non-word-boundary behavior
// is load-bearing and kept.
func Clean(text string, role Role) string {
	text = phrase.Expand(text)
	text = boilerplateRe.ReplaceAllString(text, "")

	switch role {
	case RoleResume:
		text = nameLineRe.ReplaceAllString(text, "")
		text = emailLineRe.ReplaceAllString(text, "")
		text = phoneLineRe.ReplaceAllString(text, "")
		text = phoneNumRe.ReplaceAllString(text, "")
		text = preambleRe.ReplaceAllString(text, "$1")
	case RoleJob:
		text = companyLineRe.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Section isolates the most relevant part of a cleaned document. When no
// known header is found the full text is returned unchanged; matching
// degrades gracefully instead of erroring.
func Section(text string, role Role) string {
	if role == RoleResume {
		if m := resumeSectionRe.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
		return text
	}
	if m := jobSectionRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	return text
}
