package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Embeddings (semantic scorer)
	OpenAIAPIKey      string
	EmbeddingEndpoint string // optional OpenAI-compatible override
	EmbeddingModel    string

	// Gemini resume analysis
	GeminiAPIKey string
	GeminiModel  string

	// GitHub report aggregation
	GitHubToken string

	// Cloudinary raw storage
	CloudinaryCloudName    string
	CloudinaryUploadPreset string

	AllowedOrigins   []string
	OCRMaxConcurrent int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-2.0-flash"
	}

	ocrMax := 2
	if v := os.Getenv("OCR_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ocrMax = n
		} else {
			log.Printf("Warning: invalid OCR_MAX_CONCURRENT %q, using %d", v, ocrMax)
		}
	}

	origins := []string{
		"http://localhost:5173",
		"https://career-catalyst-project.vercel.app",
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = splitAndTrim(v)
	}

	return &Config{
		Port:                   port,
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		EmbeddingEndpoint:      os.Getenv("EMBEDDING_ENDPOINT"),
		EmbeddingModel:         os.Getenv("EMBEDDING_MODEL"),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            geminiModel,
		GitHubToken:            os.Getenv("GITHUB_TOKEN"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		AllowedOrigins:         origins,
		OCRMaxConcurrent:       ocrMax,
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
