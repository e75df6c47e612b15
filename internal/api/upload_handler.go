package api

import (
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-match/internal/extract"
)

const maxUploadBytes = 5 << 20 // 5MB

// UploadResumeHandler stores a resume and analyzes it
// @Summary Upload resume
// @Description Upload a PDF resume, store it remotely and return its URL plus an optional AI analysis
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF, max 5MB)"
// @Param job_role query string false "Target job role for the analysis"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload_resume [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if a.cfg.CloudinaryCloudName == "" || a.cfg.CloudinaryUploadPreset == "" {
		writeError(w, http.StatusServiceUnavailable, "resume storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+1024)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "File size exceeds 5MB limit")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if !isPDF(header.Header.Get("Content-Type"), header.Filename) {
		writeError(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}
	if header.Size > maxUploadBytes {
		writeError(w, http.StatusBadRequest, "File size exceeds 5MB limit")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	jobRole := r.URL.Query().Get("job_role")
	log.Printf("[UploadHandler] Uploading resume %s (%d bytes), job_role: %q", header.Filename, len(content), jobRole)

	publicID := "resume_" + shortID()
	fileURL, err := a.cloud.Upload(r.Context(), content, "resumes", publicID)
	if err != nil {
		log.Printf("[UploadHandler] Upload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store resume")
		return
	}

	// Confirm the file is publicly reachable before handing the URL to
	// the frontend.
	if _, err := a.cloud.Fetch(r.Context(), fileURL); err != nil {
		log.Printf("[UploadHandler] Uploaded file not accessible: %v", err)
		writeError(w, http.StatusInternalServerError, "Uploaded file is not publicly accessible")
		return
	}

	resumeText := a.extractor.Extract(r.Context(), extract.FromBytes(content))
	if resumeText == "" {
		writeError(w, http.StatusBadRequest, "Failed to extract text from PDF")
		return
	}

	response := map[string]interface{}{"filePath": fileURL}
	if a.analyzer != nil {
		analysis, err := a.analyzer.Analyze(r.Context(), resumeText, jobRole)
		if err != nil {
			log.Printf("[UploadHandler] Resume analysis failed: %v", err)
		} else {
			response["strengths"] = analysis.Strengths
			response["weaknesses"] = analysis.Weaknesses
			response["suggestions"] = analysis.Suggestions
			response["role_fit"] = analysis.RoleFit
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func isPDF(contentType, filename string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
