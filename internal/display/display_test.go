package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srinivassivaratri/namemate/internal/config"
	"github.com/srinivassivaratri/namemate/internal/planner"
	"github.com/srinivassivaratri/namemate/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"screenshot", 734003, "716.8 KiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestContentPreview(t *testing.T) {
	assert.Equal(t, "short", ContentPreview("short", 100))
	assert.Equal(t, "anything", ContentPreview("anything", 0))

	long := strings.Repeat("word ", 40)
	got := ContentPreview(long, 20)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 20)
}

func TestRenderPreview(t *testing.T) {
	term.Configure(config.ColorNever)
	items := []*planner.FileCandidate{
		{OriginalName: "Screenshot 1.png", FinalName: "ports.png", Size: 2048, ExtractedContent: "Terminal showing ports 8080 and 443"},
		{OriginalName: "syslog.png", FinalName: "syslog.png", ExtractedContent: strings.Repeat("kernel ", 50)},
	}

	var buf bytes.Buffer
	RenderPreview(&buf, items, 100)
	out := buf.String()

	assert.Contains(t, out, "Preview of changes:")
	assert.Contains(t, out, "Old name: Screenshot 1.png (2.0 KiB)")
	assert.Contains(t, out, "New name: ports.png\n")
	assert.Contains(t, out, "Content: Terminal showing ports 8080 and 443")
	assert.Contains(t, out, "New name: syslog.png (unchanged)")
	assert.NotContains(t, out, "\033[", "no escapes with colors off")
	assert.Less(t, strings.Index(out, "ports.png"), strings.Index(out, "syslog.png"), "plan order kept")
}

func TestPrintBanner(t *testing.T) {
	term.Configure(config.ColorNever)
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "content-based file renamer v1.2.3")
}
