package scoring

import (
	"math"
	"strings"

	"resume-match/internal/phrase"
)

// Blend weights: embeddings capture paraphrase and synonymy that n-gram
// overlap misses, so the semantic signal dominates.
const (
	lexicalWeight  = 0.3
	semanticWeight = 0.7

	roleBonusBase     = 5.0
	roleBonusPerMatch = 2.0
	roleBonusCap      = 10.0
)

// Combine blends the two signals and applies the role bonus. jobRole may be
// empty; resumeSection is the isolated resume section the role bonus counts
// key phrases against. The result is clamped to [0,100] and rounded to two
// decimal places.
func Combine(lexical, semantic float64, jobRole, resumeSection string) float64 {
	combined := lexicalWeight*lexical + semanticWeight*semantic

	if jobRole != "" {
		matches := phrase.CountShared(strings.ToLower(jobRole), strings.ToLower(resumeSection))
		bonus := math.Min(roleBonusBase+roleBonusPerMatch*float64(matches), roleBonusCap)
		combined = math.Min(100, combined+bonus)
	}

	if combined < 0 {
		combined = 0
	}
	if combined > 100 {
		combined = 100
	}
	return math.Round(combined*100) / 100
}
