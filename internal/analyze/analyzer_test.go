package analyze

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) generateText(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

const validResponse = `{
  "strengths": ["clear project impact"],
  "weaknesses": ["no testing experience listed"],
  "suggestions": ["quantify achievements"],
  "role_fit": "Solid fit for a backend role."
}`

func TestAnalyzeParsesPlainJSON(t *testing.T) {
	gen := &stubGenerator{response: validResponse}
	a := &Analyzer{gen: gen}

	analysis, err := a.Analyze(context.Background(), "some resume text", "backend developer")
	require.NoError(t, err)
	assert.Equal(t, []string{"clear project impact"}, analysis.Strengths)
	assert.Equal(t, "Solid fit for a backend role.", analysis.RoleFit)
	assert.Contains(t, gen.prompt, "backend developer")
	assert.Contains(t, gen.prompt, "some resume text")
}

func TestAnalyzeParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + validResponse + "\n```"}
	a := &Analyzer{gen: gen}

	analysis, err := a.Analyze(context.Background(), "resume", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"quantify achievements"}, analysis.Suggestions)
	assert.NotContains(t, gen.prompt, "for the role of")
}

func TestAnalyzeEmptyResume(t *testing.T) {
	a := &Analyzer{gen: &stubGenerator{response: validResponse}}
	_, err := a.Analyze(context.Background(), "   ", "")
	assert.Error(t, err)
}

func TestAnalyzeGeneratorError(t *testing.T) {
	a := &Analyzer{gen: &stubGenerator{err: errors.New("quota exceeded")}}
	_, err := a.Analyze(context.Background(), "resume", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	a := &Analyzer{gen: &stubGenerator{response: "I cannot answer that."}}
	_, err := a.Analyze(context.Background(), "resume", "")
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.False(t, strings.Contains(extractJSON("```json\n{}\n```"), "`"))
}
