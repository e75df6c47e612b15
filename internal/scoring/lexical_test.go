package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-match/internal/phrase"
)

func TestLexicalEmptyInputs(t *testing.T) {
	tok := phrase.NewTokenizer()
	assert.Zero(t, Lexical(tok, "", "python developer"))
	assert.Zero(t, Lexical(tok, "python developer", ""))
	assert.Zero(t, Lexical(tok, "   ", "python developer"))
}

func TestLexicalIdenticalTextsScoreHigh(t *testing.T) {
	tok := phrase.NewTokenizer()
	text := "full stack developer skilled in react and node.js"
	got := Lexical(tok, text, text)
	assert.InDelta(t, 100, got, 0.01)
}

func TestLexicalDisjointTextsScoreZero(t *testing.T) {
	tok := phrase.NewTokenizer()
	got := Lexical(tok, "gardening landscaping flowers", "kernel compiler assembler")
	assert.Zero(t, got)
}

func TestLexicalOverlapBetweenExtremes(t *testing.T) {
	tok := phrase.NewTokenizer()
	job := "Looking for a Full Stack Developer skilled in React and Node.js"
	resume := "Experienced full stack developer, 3 years with React, Node.js, and REST APIs"
	got := Lexical(tok, job, resume)
	assert.Greater(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestLexicalSymmetric(t *testing.T) {
	tok := phrase.NewTokenizer()
	a := "python machine learning models"
	b := "machine learning with python"
	assert.InDelta(t, Lexical(tok, a, b), Lexical(tok, b, a), 1e-9)
}

func TestNgrams(t *testing.T) {
	got := ngrams([]string{"a", "b", "c"})
	assert.ElementsMatch(t, []string{
		"a", "b", "c",
		"a b", "b c",
		"a b c",
	}, got)
}

func TestCosineBounds(t *testing.T) {
	a := map[string]float64{"x": 1, "y": 2}
	assert.InDelta(t, 1.0, cosine(a, a), 1e-9)
	assert.Zero(t, cosine(a, map[string]float64{"z": 3}))
	assert.Zero(t, cosine(a, map[string]float64{}))
}
