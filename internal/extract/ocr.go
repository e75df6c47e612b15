package extract

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/otiai10/gosseract/v2"
)

// ocrDPI is the rasterization resolution. 300 DPI trades speed for enough
// detail that Tesseract handles typical scanned resumes.
const ocrDPI = "300"

// CommandRunner executes an external command and returns its combined output.
// It exists so tests can stub out the pdftoppm dependency.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// recognizer turns a page image into text. Stubbed in tests; the production
// implementation is Tesseract via gosseract.
type recognizer func(imagePath string) (string, error)

func tesseractRecognize(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	// Scanned resumes are block paragraphs, not sparse layouts.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("set page seg mode: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}

// ocrStrategy rasterizes each page with pdftoppm and recognizes it with
// Tesseract. It only supports path input: rasterization works from disk.
// OCR is CPU- and I/O-heavy, so concurrent invocations across requests are
// bounded by the sem channel.
type ocrStrategy struct {
	runner    CommandRunner
	recognize recognizer
	sem       chan struct{}
}

func newOCRStrategy(runner CommandRunner, maxConcurrent int) *ocrStrategy {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ocrStrategy{
		runner:    runner,
		recognize: tesseractRecognize,
		sem:       make(chan struct{}, maxConcurrent),
	}
}

func (s *ocrStrategy) Name() string { return "ocr" }

func (s *ocrStrategy) Extract(ctx context.Context, doc Document) (string, error) {
	if !doc.IsPath() {
		// Deliberate capability gap: buffer input cannot be rasterized.
		return "", fmt.Errorf("ocr requires file path input")
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	tmpDir, err := os.MkdirTemp("", "resume-ocr-*")
	if err != nil {
		return "", fmt.Errorf("ocr temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	out, err := s.runner.Run(ctx, "pdftoppm", "-r", ocrDPI, "-png", doc.Path(), prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w (%s)", err, out)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(pages) == 0 {
		return "", fmt.Errorf("no rasterized pages")
	}
	sort.Strings(pages)

	var text string
	for i, page := range pages {
		log.Printf("[OCR] Processing page %d/%d", i+1, len(pages))
		pageText, err := s.recognize(page)
		if err != nil {
			log.Printf("[OCR] Page %d failed: %v", i+1, err)
			continue
		}
		text += pageText + "\n"
	}
	return text, nil
}
