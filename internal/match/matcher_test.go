package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match/internal/extract"
)

type textStrategy struct {
	text string
}

func (s textStrategy) Name() string { return "stub" }

func (s textStrategy) Extract(context.Context, extract.Document) (string, error) {
	return s.text, nil
}

type fixedEncoder struct {
	vec []float32
	err error
}

func (f fixedEncoder) Encode(context.Context, string) ([]float32, error) {
	return f.vec, f.err
}

func newTestMatcher(resumeText string, enc fixedEncoder) *Matcher {
	return NewMatcher(extract.NewExtractorWithStrategies(textStrategy{text: resumeText}), enc)
}

const sampleResume = `Skills: Experienced full stack developer, 3 years with React, Node.js, and REST APIs`

const sampleJob = `Looking for a Full Stack Developer skilled in React and Node.js`

func TestMatchHappyPath(t *testing.T) {
	m := newTestMatcher(sampleResume, fixedEncoder{vec: []float32{0.3, 0.6, 0.1}})
	res := m.Match(context.Background(), extract.FromBytes([]byte("pdf")), sampleJob, "Full Stack Developer")
	require.True(t, res.OK(), "unexpected error: %s %s", res.Err, res.Detail)
	assert.Greater(t, res.MatchScore, 0.0)
	assert.LessOrEqual(t, res.MatchScore, 100.0)
}

func TestMatchIdempotent(t *testing.T) {
	m := newTestMatcher(sampleResume, fixedEncoder{vec: []float32{0.3, 0.6, 0.1}})
	doc := extract.FromBytes([]byte("pdf"))
	first := m.Match(context.Background(), doc, sampleJob, "Full Stack Developer")
	second := m.Match(context.Background(), doc, sampleJob, "Full Stack Developer")
	require.True(t, first.OK())
	assert.Equal(t, first.MatchScore, second.MatchScore)
}

func TestMatchExtractionFailed(t *testing.T) {
	m := newTestMatcher("", fixedEncoder{vec: []float32{1}})
	res := m.Match(context.Background(), extract.FromBytes(nil), sampleJob, "")
	require.False(t, res.OK())
	assert.Equal(t, ErrExtractionFailed, res.Err)
}

func TestMatchEmptyJobDescription(t *testing.T) {
	m := newTestMatcher(sampleResume, fixedEncoder{vec: []float32{1}})
	res := m.Match(context.Background(), extract.FromBytes(nil), "   ", "")
	require.False(t, res.OK())
	assert.Equal(t, ErrEmptyInput, res.Err)
}

func TestMatchEncoderFailureIsMatchingFailed(t *testing.T) {
	m := newTestMatcher(sampleResume, fixedEncoder{err: errors.New("embeddings down")})
	res := m.Match(context.Background(), extract.FromBytes(nil), sampleJob, "")
	require.False(t, res.OK())
	assert.Equal(t, ErrMatchingFailed, res.Err)
	assert.Contains(t, res.Detail, "embeddings down")
}

func TestMatchRoleBonusMonotone(t *testing.T) {
	enc := fixedEncoder{vec: []float32{0.2, 0.8}}
	m := newTestMatcher(sampleResume, enc)
	doc := extract.FromBytes([]byte("pdf"))

	without := m.Match(context.Background(), doc, sampleJob, "")
	with := m.Match(context.Background(), doc, sampleJob, "Full Stack Developer")
	require.True(t, without.OK())
	require.True(t, with.OK())
	assert.GreaterOrEqual(t, with.MatchScore, without.MatchScore)
}

func TestMatchScoreInRangeAndRounded(t *testing.T) {
	m := newTestMatcher(sampleResume, fixedEncoder{vec: []float32{1, 2, 3}})
	res := m.Match(context.Background(), extract.FromBytes(nil), sampleJob, "Full Stack Developer")
	require.True(t, res.OK())
	assert.GreaterOrEqual(t, res.MatchScore, 0.0)
	assert.LessOrEqual(t, res.MatchScore, 100.0)
	// Two-decimal rounding: scaling by 100 yields an integer value.
	scaled := res.MatchScore * 100
	assert.InDelta(t, scaled, float64(int64(scaled+0.5)), 1e-6)
}
