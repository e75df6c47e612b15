// Package analyze produces an AI review of resume text via the Gemini
// API. Analysis is best-effort: callers treat a failure as a missing
// analysis, not a failed request.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Analysis is the structured review returned in upload responses.
type Analysis struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	RoleFit     string   `json:"role_fit"`
}

type generator interface {
	generateText(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  string
}

func (g *geminiGenerator) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
	}
	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

type Analyzer struct {
	gen generator
}

func NewAnalyzer(ctx context.Context, apiKey, model string) (*Analyzer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Analyzer{gen: &geminiGenerator{client: client, model: model}}, nil
}

const promptTemplate = `You are reviewing a candidate's resume%s.
Respond with a single JSON object and nothing else, using exactly these keys:
"strengths" (array of strings), "weaknesses" (array of strings),
"suggestions" (array of strings), "role_fit" (one short sentence).

Resume text:
%s`

// Analyze reviews the resume text, optionally against a target role.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobRole string) (*Analysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, errors.New("resume text is empty")
	}
	roleClause := ""
	if jobRole != "" {
		roleClause = fmt.Sprintf(" for the role of %s", jobRole)
	}
	prompt := fmt.Sprintf(promptTemplate, roleClause, resumeText)

	raw, err := a.gen.generateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		log.Printf("[Analyze] Failed to parse analysis response: %v", err)
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return &analysis, nil
}

// extractJSON strips a Markdown code fence if the model wrapped its
// JSON in one.
func extractJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
