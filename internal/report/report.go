// Package report renders the developer evaluation PDF.
package report

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"resume-match/internal/githubstats"
)

const (
	barWidth   = 160.0
	barHeight  = 12.0
	labelWidth = 30.0
)

// Input carries everything the report needs.
type Input struct {
	Profile     *githubstats.Profile
	Rating      float64
	Salary      float64
	GeneratedAt time.Time
}

// Generate renders the PDF and returns the path of the temp file it was
// written to. The caller owns the file and removes it after upload.
func Generate(input Input) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(50, 50, 50)
		pdf.CellFormat(0, 10, "Developer Report", "", 1, "C", false, 0, "")
		pdf.Ln(15)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d | Career Catalyst", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Generated on: "+input.GeneratedAt.Format("2006-01-02 15:04:05"), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	summary := input.Profile.Summary
	sectionHeader(pdf, "GitHub Summary Statistics")
	statLine(pdf, "Total Repositories", summary.TotalRepositories)
	statLine(pdf, "Total Commits", summary.TotalCommits)
	statLine(pdf, "Total Pull Requests", summary.TotalPullRequests)
	statLine(pdf, "Total Workflows", summary.TotalWorkflows)
	pdf.Ln(5)

	sectionHeader(pdf, "Skills Analysis (All Repositories)")
	writeSkillCounts(pdf, skillCounts(input.Profile.Repositories))
	pdf.Ln(5)

	owned := ownedRepos(input.Profile.Repositories)
	sectionHeader(pdf, "Skills Analysis (User-Owned Repositories)")
	writeSkillCounts(pdf, skillCounts(owned))
	pdf.Ln(5)

	sectionHeader(pdf, "Languages Used (User-Owned Repositories)")
	writeLanguageBars(pdf, ownedLanguageBytes(input.Profile.LanguageBytes, owned))
	pdf.Ln(5)

	sectionHeader(pdf, "Candidate Evaluation")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, fmt.Sprintf("GitHub Rating: %.2f/10", input.Rating), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Suggested Salary: %.2f LPA", input.Salary), "", 1, "", false, 0, "")

	out, err := os.CreateTemp("", "report-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp report file: %w", err)
	}
	path := out.Name()
	out.Close()
	if err := pdf.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to render report PDF: %w", err)
	}
	return path, nil
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(0, 102, 204)
	pdf.CellFormat(0, 10, title, "", 1, "C", true, 0, "")
	pdf.Ln(3)
	pdf.SetTextColor(0, 0, 0)
}

func statLine(pdf *fpdf.Fpdf, label string, value int) {
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s: %d", label, value), "", 1, "", false, 0, "")
}

func ownedRepos(repos []githubstats.RepoStats) []githubstats.RepoStats {
	owned := make([]githubstats.RepoStats, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			owned = append(owned, r)
		}
	}
	return owned
}

func skillCounts(repos []githubstats.RepoStats) map[string]int {
	counts := make(map[string]int)
	for _, r := range repos {
		if r.PrimaryLanguage != "" {
			counts[r.PrimaryLanguage]++
		}
	}
	return counts
}

func writeSkillCounts(pdf *fpdf.Fpdf, counts map[string]int) {
	pdf.SetFont("Helvetica", "", 12)
	if len(counts) == 0 {
		pdf.CellFormat(0, 8, "No data available.", "", 1, "", false, 0, "")
		return
	}
	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return skills[i] < skills[j]
	})
	for _, skill := range skills {
		pdf.CellFormat(0, 8, fmt.Sprintf("%s: %d repositories", skill, counts[skill]), "", 1, "", false, 0, "")
	}
}

// ownedLanguageBytes keeps only languages that are the primary language
// of at least one user-owned repo.
func ownedLanguageBytes(all map[string]int64, owned []githubstats.RepoStats) map[string]int64 {
	filtered := make(map[string]int64)
	for lang, bytes := range all {
		for _, r := range owned {
			if r.PrimaryLanguage == lang {
				filtered[lang] = bytes
				break
			}
		}
	}
	return filtered
}

func writeLanguageBars(pdf *fpdf.Fpdf, languageBytes map[string]int64) {
	if len(languageBytes) == 0 {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, "No data available.", "", 1, "", false, 0, "")
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Language Distribution:", "", 1, "", false, 0, "")
	pdf.Ln(5)

	languages := make([]string, 0, len(languageBytes))
	var maxBytes int64
	for lang, bytes := range languageBytes {
		languages = append(languages, lang)
		if bytes > maxBytes {
			maxBytes = bytes
		}
	}
	sort.Slice(languages, func(i, j int) bool {
		if languageBytes[languages[i]] != languageBytes[languages[j]] {
			return languageBytes[languages[i]] > languageBytes[languages[j]]
		}
		return languages[i] < languages[j]
	})

	y := pdf.GetY()
	for _, lang := range languages {
		y = drawLanguageBar(pdf, lang, languageBytes[lang], maxBytes, y)
	}
	pdf.SetY(y)
}

func drawLanguageBar(pdf *fpdf.Fpdf, language string, bytes, maxBytes int64, startY float64) float64 {
	_, pageHeight := pdf.GetPageSize()
	leftMargin, _, _, bottomMargin := pdf.GetMargins()
	if startY+barHeight+5 > pageHeight-bottomMargin {
		pdf.AddPage()
		_, startY = pdf.GetXY()
	}
	startX := leftMargin + labelWidth

	percentage := float64(bytes) / float64(maxBytes) * 100
	fillWidth := float64(bytes) / float64(maxBytes) * barWidth

	pdf.SetXY(leftMargin+2, startY+2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth-5, barHeight, language, "", 0, "R", false, 0, "")

	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(startX, startY, barWidth, barHeight, "F")
	pdf.SetFillColor(41, 128, 185)
	if fillWidth > 0 {
		pdf.Rect(startX, startY, fillWidth, barHeight, "F")
	}

	stats := fmt.Sprintf("%.1f%% (%s)", percentage, formatBytes(bytes))
	// White label inside the bar when it fits, black beside it otherwise.
	if fillWidth > pdf.GetStringWidth(stats)+10 {
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetXY(startX+5, startY+2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(barWidth-10, barHeight-4, stats, "", 1, "", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return startY + barHeight + 1
}

func formatBytes(count int64) string {
	value := float64(count)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
