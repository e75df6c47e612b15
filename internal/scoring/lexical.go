// Package scoring computes the two similarity signals between a job
// description and a resume, and blends them into the final 0-100 score.
package scoring

import (
	"math"
	"strings"

	"resume-match/internal/phrase"
)

// maxNGram is the largest n-gram size entered into the lexical vector space.
const maxNGram = 3

// Lexical scores term overlap between the two texts as TF-IDF cosine
// similarity over 1..3-grams of phrase-aware tokens, scaled to [0,100].
//
// The corpus is exactly the two documents, which makes IDF nearly uniform:
// a term present in both carries the minimum weight and the score is driven
// by raw overlap. That mirrors the behavior this scorer replaces and is
// intentional.
func Lexical(tok *phrase.Tokenizer, jobText, resumeText string) float64 {
	if strings.TrimSpace(jobText) == "" || strings.TrimSpace(resumeText) == "" {
		return 0
	}

	jobGrams := ngrams(phrase.Collect(tok.Tokens(jobText)))
	resumeGrams := ngrams(phrase.Collect(tok.Tokens(resumeText)))
	if len(jobGrams) == 0 || len(resumeGrams) == 0 {
		return 0
	}

	jobVec, resumeVec := tfidfPair(jobGrams, resumeGrams)
	return cosine(jobVec, resumeVec) * 100
}

// ngrams expands a token slice into all 1..maxNGram grams, joined by spaces.
func ngrams(tokens []string) []string {
	var grams []string
	for n := 1; n <= maxNGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// tfidfPair builds smoothed TF-IDF vectors for the two documents over their
// joint vocabulary. Smoothing: idf = ln((1+N)/(1+df)) + 1 with N = 2.
func tfidfPair(a, b []string) (map[string]float64, map[string]float64) {
	tfA := termCounts(a)
	tfB := termCounts(b)

	idf := func(term string) float64 {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	vecA := make(map[string]float64, len(tfA))
	for term, count := range tfA {
		vecA[term] = float64(count) * idf(term)
	}
	vecB := make(map[string]float64, len(tfB))
	for term, count := range tfB {
		vecB[term] = float64(count) * idf(term)
	}
	return vecA, vecB
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// cosine computes similarity between sparse vectors.
func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for term, va := range a {
		normA += va * va
		if vb, ok := b[term]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
