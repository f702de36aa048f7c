// Package display renders the startup banner and the rename preview.
package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/reflow/truncate"

	"github.com/srinivassivaratri/namemate/internal/planner"
	"github.com/srinivassivaratri/namemate/internal/term"
)

var sizeUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// FormatBytes renders a file size with binary units, e.g. "716.8 KiB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}
	v := float64(n) / 1024
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %s", v, sizeUnits[unit])
}

// ContentPreview cuts content to at most n display columns, marking the cut
// with an ellipsis. n <= 0 returns content unchanged.
func ContentPreview(content string, n int) string {
	if n <= 0 {
		return content
	}
	return truncate.StringWithTail(content, uint(n), "…")
}

// RenderPreview writes the old name, new name and content preview of every
// planned item, in plan order.
func RenderPreview(w io.Writer, items []*planner.FileCandidate, previewChars int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, term.Paint(term.Heading, "Preview of changes:"))
	for _, fc := range items {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Old name: %s %s\n", fc.OriginalName, term.Paint(term.Faint, "("+FormatBytes(fc.Size)+")"))
		if fc.FinalName == fc.OriginalName {
			fmt.Fprintf(w, "New name: %s %s\n", fc.FinalName, term.Paint(term.Faint, "(unchanged)"))
		} else {
			fmt.Fprintf(w, "New name: %s\n", term.Paint(term.Highlight, fc.FinalName))
		}
		fmt.Fprintf(w, "Content: %s\n", ContentPreview(fc.ExtractedContent, previewChars))
	}
	fmt.Fprintln(w)
}
