package pdf

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// Magic is the signature every PDF file starts with.
const Magic = "%PDF-"

// Extracted is the plain text of a PDF.
type Extracted struct {
	Text      string
	PageCount int
	Truncated bool
}

// Extractor reads the plain text of a PDF page by page.
type Extractor struct {
	maxChars int
}

// NewExtractor creates an Extractor that keeps at most maxChars runes (0 = unlimited).
func NewExtractor(maxChars int) *Extractor {
	return &Extractor{maxChars: maxChars}
}

// Extract returns the normalized text of the PDF at path.
// Parse failures are reported as domain.ErrUnprocessable.
func (e *Extractor) Extract(ctx context.Context, path string) (res Extracted, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract: malformed pdf: %v: %w", r, domain.ErrUnprocessable)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Extracted{}, fmt.Errorf("extract: open: %v: %w", err, domain.ErrUnprocessable)
	}
	defer f.Close()

	res.PageCount = r.NumPage()

	var b strings.Builder
	for i := 1; i <= res.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return Extracted{}, fmt.Errorf("extract: %w", err)
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Extracted{}, fmt.Errorf("extract: page %d: %v: %w", i, err, domain.ErrUnprocessable)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	res.Text, res.Truncated = clip(normalize(b.String()), e.maxChars)
	return res, nil
}

// normalize collapses runs of blank space and drops control characters.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Map(func(r rune) rune {
			if unicode.IsControl(r) && r != '\t' {
				return -1
			}
			return r
		}, line)
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func clip(s string, limit int) (string, bool) {
	if limit <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
