package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"resume-match/internal/analyze"
	"resume-match/internal/cloudinary"
	"resume-match/internal/config"
	"resume-match/internal/embedding"
	"resume-match/internal/extract"
	"resume-match/internal/githubstats"
	"resume-match/internal/match"
	"resume-match/internal/storage"
)

type API struct {
	cfg       *config.Config
	db        *storage.DB
	extractor *extract.Extractor
	matcher   *match.Matcher
	cloud     *cloudinary.Client
	analyzer  *analyze.Analyzer
	github    *githubstats.Service
}

func NewAPI(ctx context.Context, cfg *config.Config) (*API, error) {
	extractor := extract.NewExtractor(cfg.OCRMaxConcurrent)

	var encoder embedding.Encoder
	if cfg.EmbeddingEndpoint != "" {
		encoder = embedding.NewOpenAIEncoderAt(cfg.EmbeddingEndpoint, cfg.OpenAIAPIKey, cfg.EmbeddingModel)
	} else {
		encoder = embedding.NewOpenAIEncoder(cfg.OpenAIAPIKey)
	}

	api := &API{
		cfg:       cfg,
		extractor: extractor,
		matcher:   match.NewMatcher(extractor, encoder),
		cloud:     cloudinary.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset),
	}

	// Persistence is optional: match history is simply not recorded
	// when no database is configured.
	if cfg.DatabaseURL != "" {
		db, err := storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		api.db = db
	} else {
		log.Println("DATABASE_URL not set, running without match history")
	}

	if cfg.GeminiAPIKey != "" {
		analyzer, err := analyze.NewAnalyzer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Gemini analyzer unavailable: %v", err)
		} else {
			api.analyzer = analyzer
		}
	}

	if cfg.GitHubToken != "" {
		api.github = githubstats.NewService(ctx, cfg.GitHubToken)
	}

	return api, nil
}

func (a *API) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
