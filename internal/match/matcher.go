// Package match is the single entry point of the scoring pipeline: raw
// document in, tagged result out. It never panics or errors across its
// boundary; every failure mode is a Result with an error kind.
package match

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-match/internal/embedding"
	"resume-match/internal/extract"
	"resume-match/internal/phrase"
	"resume-match/internal/scoring"
	"resume-match/internal/textnorm"
)

// ErrKind classifies match failures for callers rendering user-facing
// messages.
type ErrKind string

const (
	// ErrExtractionFailed means every extraction strategy yielded empty text.
	ErrExtractionFailed ErrKind = "extraction_failed"
	// ErrEmptyInput means the job description was missing or blank.
	ErrEmptyInput ErrKind = "empty_input"
	// ErrMatchingFailed means scoring itself failed unexpectedly.
	ErrMatchingFailed ErrKind = "matching_failed"
)

// Result is either a score or an error, never both.
type Result struct {
	MatchScore float64
	Err        ErrKind
	Detail     string
}

// OK reports whether the result carries a score.
func (r Result) OK() bool { return r.Err == "" }

func failure(kind ErrKind, detail string) Result {
	return Result{Err: kind, Detail: detail}
}

// Matcher wires the pipeline together. Construct once at process start; the
// tokenizer and encoder it holds are immutable shared state.
type Matcher struct {
	extractor *extract.Extractor
	tokenizer *phrase.Tokenizer
	encoder   embedding.Encoder
}

func NewMatcher(extractor *extract.Extractor, encoder embedding.Encoder) *Matcher {
	return &Matcher{
		extractor: extractor,
		tokenizer: phrase.NewTokenizer(),
		encoder:   encoder,
	}
}

// Match scores how well the resume document fits the job description,
// 0-100. jobRole is optional; when present it adds the role bonus.
func (m *Matcher) Match(ctx context.Context, doc extract.Document, jobDescription, jobRole string) Result {
	resumeText := m.extractor.Extract(ctx, doc)
	if resumeText == "" {
		return failure(ErrExtractionFailed, "failed to extract text from resume")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return failure(ErrEmptyInput, "job description is required for matching")
	}

	jobClean := textnorm.Clean(jobDescription, textnorm.RoleJob)
	resumeClean := textnorm.Clean(resumeText, textnorm.RoleResume)
	jobSection := textnorm.Section(jobClean, textnorm.RoleJob)
	resumeSection := textnorm.Section(resumeClean, textnorm.RoleResume)

	// The scorers are pure functions of the same immutable inputs, so they
	// run concurrently without any ordering dependency.
	var lexicalScore, semanticScore float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverScoring(&err)
		lexicalScore = scoring.Lexical(m.tokenizer, jobSection, resumeSection)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverScoring(&err)
		semanticScore, err = scoring.Semantic(gctx, m.encoder, jobSection, resumeSection)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[Match] scoring failed: %v", err)
		return failure(ErrMatchingFailed, fmt.Sprintf("matching failed: %v", err))
	}

	combined := scoring.Combine(lexicalScore, semanticScore, jobRole, resumeSection)
	log.Printf("[Match] lexical: %.2f, semantic: %.2f, combined: %.2f",
		lexicalScore, semanticScore, combined)

	return Result{MatchScore: combined}
}

// recoverScoring converts a scorer panic on degenerate input into an error
// so it surfaces as MatchingFailed instead of killing the request.
func recoverScoring(err *error) {
	if rec := recover(); rec != nil {
		*err = fmt.Errorf("scoring panic: %v", rec)
	}
}
