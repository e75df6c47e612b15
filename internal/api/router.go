package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Matching pipeline
	mux.HandleFunc("/match_resume_job", a.MatchResumeJobHandler)
	mux.HandleFunc("/matches", a.RecentMatchesHandler)

	// Resume intake
	mux.HandleFunc("/upload_resume", a.UploadResumeHandler)

	// Developer report
	mux.HandleFunc("/report/generate-report", a.GenerateReportHandler)

	return CORS(a.cfg.AllowedOrigins, mux)
}
