package naming

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_SequenceForOneBase(t *testing.T) {
	c := NewNameCounter()
	for k := 1; k <= 12; k++ {
		got := c.Allocate("ports", ".png")
		want := "ports.png"
		if k >= 2 {
			want = fmt.Sprintf("ports_%d.png", k)
		}
		assert.Equal(t, want, got, "allocation #%d", k)
	}
	assert.Equal(t, 12, c.Count("ports"))
}

func TestAllocate_SecondCallIsSuffixTwo(t *testing.T) {
	c := NewNameCounter()
	assert.Equal(t, "build.log", c.Allocate("build", ".log"))
	assert.Equal(t, "build_2.log", c.Allocate("build", ".log"))
}

func TestAllocate_NoDuplicatesAcrossBases(t *testing.T) {
	c := NewNameCounter()
	bases := []string{"db", "dbbackup", "db", "api", "db", "api", "dbbackup", "db2", "db", "a_2", "a", "a", "db_3", "db"}
	seen := make(map[string]bool)
	for _, b := range bases {
		name := c.Allocate(b, ".png")
		require.False(t, seen[name], "duplicate final name %q", name)
		seen[name] = true
	}
	assert.Equal(t, 0, c.Count("never"))
}

func TestAllocate_SkipsNamesIssuedUnderAnotherBase(t *testing.T) {
	c := NewNameCounter()
	assert.Equal(t, "a_2.txt", c.Allocate("a_2", ".txt"))
	assert.Equal(t, "a.txt", c.Allocate("a", ".txt"))
	assert.Equal(t, "a_3.txt", c.Allocate("a", ".txt"), "a_2.txt is already taken")
	assert.Equal(t, "a_4.txt", c.Allocate("a", ".txt"))
	assert.Equal(t, 4, c.Count("a"))

	assert.Equal(t, "a_2.md", c.Allocate("a_2", ".md"), "a different extension is a different name")
}

func TestAllocate_PreservesExtension(t *testing.T) {
	c := NewNameCounter()
	_, ext := SplitExt("report.final.PDF")
	require.Equal(t, ".PDF", ext)

	first := c.Allocate("invoice", ext)
	second := c.Allocate("invoice", ext)
	assert.Equal(t, "invoice.PDF", first)
	assert.Equal(t, "invoice_2.PDF", second)
	assert.Equal(t, "notes", c.Allocate("notes", ""), "files without extension stay without one")
}

func TestAllocate_CountersAreScopedPerRun(t *testing.T) {
	first := NewNameCounter()
	first.Allocate("ports", ".png")
	second := NewNameCounter()
	assert.Equal(t, "ports.png", second.Allocate("ports", ".png"))
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		in, stem, ext string
	}{
		{"photo.jpg", "photo", ".jpg"},
		{"report.final.PDF", "report.final", ".PDF"},
		{"Makefile", "Makefile", ""},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{".env", ".env", ""},
		{".config.yaml", ".config", ".yaml"},
		{"..hidden", "..hidden", ""},
		{"trailing.", "trailing", "."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			stem, ext := SplitExt(tt.in)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestCleanFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and spaces", "Network Config", "network_config"},
		{"punctuation dropped", "auth-fail!", "authfail"},
		{"underscore runs collapsed", "db   backup", "db_backup"},
		{"trimmed underscores", " _ports_ ", "ports"},
		{"nothing left", "!!!", ""},
		{"non ascii dropped", "café menü", "caf_men"},
		{"capped at fifty", strings.Repeat("a", 80), strings.Repeat("a", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanFilename(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name     string
		raw      string
		original string
		want     string
		wantOK   bool
	}{
		{"plain token", "ports", "Screenshot 2024-01-01.png", "ports", true},
		{"quoted token", `"netconfig"`, "a.png", "netconfig", true},
		{"underscores removed", "db_backup", "a.png", "dbbackup", true},
		{"capped to max length", "verylongdescriptivename", "a.png", "verylongdescrip", true},
		{"first line only", "syslog\nThis shows system logs.", "a.png", "syslog", true},
		{"echoed extension dropped", "apidocs.png", "x.png", "apidocs", true},
		{"blacklisted falls back to original", "screenshot", "invoice_march.pdf", "invoice", true},
		{"too short falls back", "ui", "dashboard-v2.png", "dashboard", true},
		{"blacklisted and generic original", "unknown", "Screenshot 2024-05-01 at 10.00.00.png", "", false},
		{"empty output and camera name", "", "IMG_1234.JPG", "", false},
		{"empty output with meaningful name", "  ", "budget.xlsx", "budget", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Normalize(tt.raw, tt.original)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_ResultShape(t *testing.T) {
	r := DefaultRules()
	inputs := []string{"Git Merge Conflict!!", "Docker settings", "  **BUILD**  ", "Terminal-showing-ports"}
	for _, in := range inputs {
		got, ok := r.Normalize(in, "x.png")
		require.True(t, ok, in)
		assert.LessOrEqual(t, len(got), r.MaxLength)
		assert.Regexp(t, `^[a-z0-9]+$`, got)
	}
}

func TestFallback(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		original string
		want     string
		wantOK   bool
	}{
		{"quarterly_report.pdf", "quarterly", true},
		{"a_b_meeting.txt", "meeting", true},
		{"IMG_20240101_123456.jpg", "", false},
		{"DSC0042.JPG", "", false},
		{"PXL_20231212_101010.mp4", "", false},
		{"Screen Recording 2024-03-01.mov", "", false},
		{"WhatsApp Image 2024-01-01.jpeg", "", false},
		{"2024-01-01 10.22.33.png", "", false},
		{"untitled.txt", "", false},
		{"error.log", "", false},
		{"supercalifragilisticexpialidocious.txt", "supercalifragil", true},
		{".env", "env", true},
		{"...", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			got, ok := r.Fallback(tt.original)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromConfig_BlacklistIsCaseInsensitive(t *testing.T) {
	r := DefaultRules()
	r.Blacklist["photo"] = true
	assert.True(t, r.Blacklisted("PHOTO"))
	assert.True(t, r.Blacklisted("Image"))
	assert.False(t, r.Blacklisted("ports"))
}
