package extract

import (
	"context"
	"log"
	"strings"
)

// Extractor runs the strategy chain. Construct once and share; the OCR
// semaphore lives inside it.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor builds the default chain: docconv, lenient PDF re-parse, OCR.
// maxConcurrentOCR bounds simultaneous OCR invocations across requests.
func NewExtractor(maxConcurrentOCR int) *Extractor {
	return &Extractor{
		strategies: []Strategy{
			docconvStrategy{},
			pdfReaderStrategy{},
			newOCRStrategy(ExecRunner{}, maxConcurrentOCR),
		},
	}
}

// NewExtractorWithStrategies is the injection point for tests.
func NewExtractorWithStrategies(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// Extract tries each strategy in order and returns the first non-empty text,
// trimmed. It never fails across its boundary: strategy errors are logged
// and the next strategy is tried; exhausting the chain returns "".
func (e *Extractor) Extract(ctx context.Context, doc Document) string {
	for _, s := range e.strategies {
		text, err := s.Extract(ctx, doc)
		if err != nil {
			log.Printf("[Extract] %s failed: %v", s.Name(), err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			log.Printf("[Extract] %s succeeded (%d chars)", s.Name(), len(text))
			return text
		}
		log.Printf("[Extract] %s yielded no text, trying next strategy", s.Name())
	}
	log.Printf("[Extract] all strategies exhausted")
	return ""
}
