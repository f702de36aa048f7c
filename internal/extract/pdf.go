package extract

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"rsc.io/pdf"
)

// PdfExtractor concatenates the text runs of the first MaxPages pages.
type PdfExtractor struct {
	MaxPages int // 0 = all pages.
}

func (e *PdfExtractor) Name() string { return "pdf" }

// Extract implements [Extractor]. The pdf reader panics on some malformed
// files; those panics are returned as errors.
func (e *PdfExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrInvalidData, rec)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	r, err := pdf.NewReader(f, st.Size())
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrInvalidData, err)
	}

	n := r.NumPage()
	if e.MaxPages > 0 && n > e.MaxPages {
		n = e.MaxPages
	}

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		writeRuns(&sb, p.Content().Text)
		sb.WriteByte('\n')
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmpty
	}
	return sb.String(), nil
}

// writeRuns joins positioned glyph runs, inserting a space on line changes
// and on horizontal gaps wider than a fifth of the font size.
func writeRuns(sb *strings.Builder, runs []pdf.Text) {
	var prev *pdf.Text
	for i := range runs {
		t := &runs[i]
		if prev != nil {
			gap := t.X - (prev.X + prev.W)
			if math.Abs(t.Y-prev.Y) > prev.FontSize/2 || gap > prev.FontSize/5 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.S)
		prev = t
	}
}
