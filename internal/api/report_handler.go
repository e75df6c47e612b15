package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"resume-match/internal/extract"
	"resume-match/internal/githubstats"
	"resume-match/internal/report"
	"resume-match/internal/storage"
)

type ReportRequest struct {
	ResumeFilePath string   `json:"resumeFilePath"`
	MinSalary      *float64 `json:"min_salary"`
	MaxSalary      *float64 `json:"max_salary"`
}

// GenerateReportHandler builds a developer evaluation PDF
// @Summary Generate developer report
// @Description Extract the candidate's GitHub login from their resume, aggregate their GitHub activity and render an evaluation PDF
// @Tags reports
// @Accept json
// @Produce json
// @Param request body ReportRequest true "Resume URL and salary range"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /report/generate-report [post]
func (a *API) GenerateReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.github == nil {
		writeError(w, http.StatusServiceUnavailable, "GitHub integration is not configured")
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ResumeFilePath == "" {
		writeError(w, http.StatusBadRequest, "resumeFilePath is required")
		return
	}
	if req.MinSalary == nil || req.MaxSalary == nil {
		writeError(w, http.StatusBadRequest, "Both min_salary and max_salary are required")
		return
	}
	if *req.MinSalary >= *req.MaxSalary {
		writeError(w, http.StatusBadRequest, "min_salary must be less than max_salary")
		return
	}

	data, err := a.cloud.Fetch(r.Context(), req.ResumeFilePath)
	if err != nil {
		log.Printf("[ReportHandler] Failed to fetch resume: %v", err)
		writeError(w, http.StatusBadRequest, "Failed to fetch resume")
		return
	}

	resumeText := a.extractor.Extract(r.Context(), extract.FromBytes(data))
	if resumeText == "" {
		writeError(w, http.StatusBadRequest, "Failed to extract text from resume")
		return
	}

	githubID, ok := githubstats.ExtractGitHubID(resumeText)
	if !ok {
		writeError(w, http.StatusBadRequest, "No GitHub ID found in resume")
		return
	}
	log.Printf("[ReportHandler] Extracted GitHub ID: %s", githubID)

	profile, err := a.github.Aggregate(r.Context(), githubID)
	if err != nil {
		log.Printf("[ReportHandler] GitHub aggregation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch GitHub data")
		return
	}

	rating := githubstats.Rating(profile.Summary)
	salary := githubstats.SalaryFor(rating, *req.MinSalary, *req.MaxSalary)
	log.Printf("[ReportHandler] Rating: %.2f, suggested salary: %.2f", rating, salary)

	pdfPath, err := report.Generate(report.Input{
		Profile:     profile,
		Rating:      rating,
		Salary:      salary,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		log.Printf("[ReportHandler] PDF generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	defer os.Remove(pdfPath)

	pdfData, err := os.ReadFile(pdfPath)
	if err != nil || len(pdfData) == 0 {
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF: empty file")
		return
	}

	publicID := fmt.Sprintf("report_%s_%s", githubID, shortID())
	reportURL, err := a.cloud.Upload(r.Context(), pdfData, "reports", publicID)
	if err != nil {
		log.Printf("[ReportHandler] Report upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store report")
		return
	}

	if _, err := a.cloud.Fetch(r.Context(), reportURL); err != nil {
		log.Printf("[ReportHandler] Uploaded report not accessible: %v", err)
		writeError(w, http.StatusInternalServerError, "Uploaded PDF is not accessible or invalid")
		return
	}

	if a.db != nil {
		rec := &storage.ReportRecord{
			GitHubLogin: githubID,
			Rating:      rating,
			ReportURL:   reportURL,
		}
		if err := a.db.SaveReportRecord(r.Context(), rec); err != nil {
			log.Printf("[ReportHandler] Failed to save report record: %v", err)
		}
	}

	w.Header().Set("X-Report-FilePath", reportURL)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report_"+githubID+".pdf"))
	writeJSON(w, http.StatusOK, map[string]string{"filePath": reportURL})
}
