package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"

	"resume-match/internal/embedding"
	"resume-match/internal/phrase"
)

const (
	keywordBonusPerMatch = 0.1
	keywordBonusCap      = 0.2
)

// Semantic scores the two texts by dense-embedding cosine similarity plus a
// capped key-phrase bonus, scaled to [0,100]. Preprocessing is deliberately
// minimal (lowercase, synonym expansion, punctuation stripped, nothing
// dropped): the embedding model consumes near-raw text, unlike the lexical
// scorer's phrase-aware pipeline.
func Semantic(ctx context.Context, enc embedding.Encoder, jobText, resumeText string) (float64, error) {
	if strings.TrimSpace(jobText) == "" || strings.TrimSpace(resumeText) == "" {
		return 0, nil
	}

	jobProcessed := minimalTokens(jobText)
	resumeProcessed := minimalTokens(resumeText)

	jobVec, err := enc.Encode(ctx, jobProcessed)
	if err != nil {
		return 0, fmt.Errorf("encode job description: %w", err)
	}
	resumeVec, err := enc.Encode(ctx, resumeProcessed)
	if err != nil {
		return 0, fmt.Errorf("encode resume: %w", err)
	}

	similarity := cosine32(jobVec, resumeVec)

	bonus := keywordBonusPerMatch * float64(phrase.CountShared(jobProcessed, resumeProcessed))
	if bonus > keywordBonusCap {
		bonus = keywordBonusCap
	}

	final := math.Min(1.0, similarity+bonus)
	return math.Max(0, final) * 100, nil
}

// minimalTokens lowercases, expands synonyms, and drops tokens made of
// punctuation alone. Punctuation inside words stays: "node.js" and
// "scikit-learn" must survive for the key-phrase bonus.
func minimalTokens(text string) string {
	words := strings.Fields(phrase.Expand(text))
	kept := words[:0]
	for _, w := range words {
		if strings.ContainsFunc(w, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsNumber(r)
		}) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// cosine32 computes cosine similarity between dense vectors in [-1, 1].
func cosine32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
