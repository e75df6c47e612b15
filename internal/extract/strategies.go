package extract

import (
	"bytes"
	"context"
	"fmt"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// Strategy is one extraction tactic. Implementations return the extracted
// text, or "" when the tactic yields nothing for this document; errors are
// for diagnostics only and never abort the chain.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, doc Document) (string, error)
}

// docconvStrategy is the primary, layout-preserving parser.
type docconvStrategy struct{}

func (docconvStrategy) Name() string { return "docconv" }

func (docconvStrategy) Extract(_ context.Context, doc Document) (string, error) {
	var res *docconv.Response
	var err error
	if doc.IsPath() {
		res, err = docconv.ConvertPath(doc.Path())
	} else {
		data, berr := doc.Bytes()
		if berr != nil {
			return "", berr
		}
		res, err = docconv.Convert(bytes.NewReader(data), "application/pdf", true)
	}
	if err != nil {
		return "", fmt.Errorf("docconv convert: %w", err)
	}
	return res.Body, nil
}

// pdfReaderStrategy is the lenient fallback parser. It reads the raw content
// streams directly and often recovers text from documents whose layout parse
// comes back empty.
type pdfReaderStrategy struct{}

func (pdfReaderStrategy) Name() string { return "pdf-reader" }

func (pdfReaderStrategy) Extract(_ context.Context, doc Document) (string, error) {
	data, err := doc.Bytes()
	if err != nil {
		return "", err
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader open: %w", err)
	}
	var buf bytes.Buffer
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		text, err := pageText(r, pageNum)
		if err != nil {
			// One bad page must not abort the document.
			continue
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

// pageText extracts a single page, recovering the panics the pdf package
// raises on malformed content streams.
func pageText(r *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: %v", pageNum, rec)
		}
	}()
	p := r.Page(pageNum)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d: null", pageNum)
	}
	return p.GetPlainText(nil)
}
