package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"

	"resume-match/internal/extract"
	"resume-match/internal/match"
	"resume-match/internal/storage"
)

type MatchRequest struct {
	ResumeFilePath string `json:"resumeFilePath"`
	JobDescription string `json:"jobDescription"`
	JobRole        string `json:"jobRole"`
}

type MatchResponse struct {
	MatchScore float64 `json:"match_score"`
}

// MatchResumeJobHandler scores a resume against a job description
// @Summary Match resume to job
// @Description Fetch a stored resume by URL and score it against a job description (0-100)
// @Tags matching
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Resume URL, job description and optional role"
// @Success 200 {object} MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /match_resume_job [post]
func (a *API) MatchResumeJobHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.ResumeFilePath == "" {
		writeError(w, http.StatusBadRequest, "resumeFilePath is required")
		return
	}
	if req.JobDescription == "" {
		writeError(w, http.StatusBadRequest, "jobDescription is required")
		return
	}

	data, err := a.cloud.Fetch(r.Context(), req.ResumeFilePath)
	if err != nil {
		log.Printf("[MatchHandler] Failed to fetch resume: %v", err)
		writeError(w, http.StatusBadRequest, "Failed to fetch resume")
		return
	}

	// OCR needs a file on disk, so the fetched PDF goes through a temp
	// file rather than straight from the buffer.
	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to stage resume")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, "failed to stage resume")
		return
	}
	tmp.Close()

	result := a.matcher.Match(r.Context(), extract.FromPath(tmpPath), req.JobDescription, req.JobRole)
	a.saveMatchOutcome(r, req, result)

	if !result.OK() {
		status := http.StatusBadRequest
		if result.Err == match.ErrMatchingFailed {
			status = http.StatusInternalServerError
		}
		writeError(w, status, result.Detail)
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{MatchScore: result.MatchScore})
}

// RecentMatchesHandler lists recent match outcomes
// @Summary List recent matches
// @Description Return the newest match results, newest first
// @Tags matching
// @Produce json
// @Param limit query int false "Maximum records to return (default 20)"
// @Success 200 {array} storage.MatchRecord
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (a *API) RecentMatchesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.db == nil {
		writeError(w, http.StatusServiceUnavailable, "match history is not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := a.db.RecentMatches(r.Context(), limit)
	if err != nil {
		log.Printf("[MatchHandler] Failed to load match history: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load match history")
		return
	}
	if records == nil {
		records = []*storage.MatchRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// saveMatchOutcome records the attempt when a database is configured.
// Persistence failures are logged, never surfaced.
func (a *API) saveMatchOutcome(r *http.Request, req MatchRequest, result match.Result) {
	if a.db == nil {
		return
	}
	rec := &storage.MatchRecord{
		ResumeURL: req.ResumeFilePath,
		JobRole:   req.JobRole,
	}
	if result.OK() {
		score := result.MatchScore
		rec.MatchScore = &score
	} else {
		rec.ErrorKind = string(result.Err)
	}
	if err := a.db.SaveMatchRecord(r.Context(), rec); err != nil {
		log.Printf("[MatchHandler] Failed to save match record: %v", err)
	}
}
