package planner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExtractor returns the filename stem as content, except for names in
// empty.
type stubExtractor struct {
	empty map[string]bool
	calls []string
}

func (s *stubExtractor) ExtractContent(_ context.Context, path string) (string, bool) {
	name := filepath.Base(path)
	s.calls = append(s.calls, name)
	if s.empty[name] {
		return "", false
	}
	return "content of " + name, true
}

// mapSuggester maps original names to suggestions; missing names fail.
type mapSuggester map[string]string

func (m mapSuggester) SuggestName(_ context.Context, _ string, originalName string) (string, bool) {
	s, ok := m[originalName]
	return s, ok
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Debug(bool, string, ...interface{}) {}

func newPlanner(ext *stubExtractor, sug mapSuggester) *Planner {
	return &Planner{Extractor: ext, Suggester: sug, Log: nopLogger{}}
}

func TestBuild_AllocatesUniqueNames(t *testing.T) {
	names := []string{"a.png", "b.png", "c.jpg", "d.png"}
	sug := mapSuggester{"a.png": "ports", "b.png": "ports", "c.jpg": "ports", "d.png": "syslog"}

	plan := newPlanner(&stubExtractor{}, sug).Build(context.Background(), "/tmp/x", names)

	require.Len(t, plan.Items, 4)
	got := make([]string, len(plan.Items))
	for i, fc := range plan.Items {
		got[i] = fc.FinalName
		assert.Equal(t, StatePlanned, fc.State)
		assert.Equal(t, filepath.Join("/tmp/x", fc.OriginalName), fc.Path)
	}
	assert.Equal(t, []string{"ports.png", "ports_2.png", "ports_3.jpg", "syslog.png"}, got)
	assert.Equal(t, 3, plan.Counter.Count("ports"))
}

func TestBuild_NoDuplicateFinalNames(t *testing.T) {
	names := []string{"x.txt", "y.txt", "z.txt", ".env"}
	sug := mapSuggester{"x.txt": "a_2", "y.txt": "a", "z.txt": "a", ".env": "config"}

	plan := newPlanner(&stubExtractor{}, sug).Build(context.Background(), ".", names)

	require.Len(t, plan.Items, 4)
	got := make([]string, len(plan.Items))
	for i, fc := range plan.Items {
		got[i] = fc.FinalName
	}
	assert.Equal(t, []string{"a_2.txt", "a.txt", "a_3.txt", "config"}, got)
}

func TestBuild_SkipStates(t *testing.T) {
	names := []string{"blank.png", "odd.png", "good.png"}
	ext := &stubExtractor{empty: map[string]bool{"blank.png": true}}
	sug := mapSuggester{"good.png": "docker"}

	plan := newPlanner(ext, sug).Build(context.Background(), ".", names)

	require.Len(t, plan.Items, 1)
	assert.Equal(t, "docker.png", plan.Items[0].FinalName)
	require.Len(t, plan.Skipped, 2)
	assert.Equal(t, StateSkippedNoContent, plan.Skipped[0].State)
	assert.Equal(t, StateSkippedNoSuggestion, plan.Skipped[1].State)
	assert.Equal(t, "content of odd.png", plan.Skipped[1].ExtractedContent)
	assert.Equal(t, []string{"blank.png", "odd.png", "good.png"}, ext.calls)
	assert.Equal(t, 1, plan.CountState(StateSkippedNoContent))
	assert.Equal(t, 1, plan.CountState(StatePlanned))
}

func TestBuild_PreservesExtensionCase(t *testing.T) {
	sug := mapSuggester{"report.final.PDF": "invoice"}
	plan := newPlanner(&stubExtractor{}, sug).Build(context.Background(), ".", []string{"report.final.PDF"})
	require.Len(t, plan.Items, 1)
	assert.True(t, strings.HasSuffix(plan.Items[0].FinalName, ".PDF"))
	assert.Equal(t, "invoice.PDF", plan.Items[0].FinalName)
}

func TestBuild_FreshCounterPerCall(t *testing.T) {
	p := newPlanner(&stubExtractor{}, mapSuggester{"a.png": "ports"})
	first := p.Build(context.Background(), ".", []string{"a.png"})
	second := p.Build(context.Background(), ".", []string{"a.png"})
	assert.Equal(t, "ports.png", first.Items[0].FinalName)
	assert.Equal(t, "ports.png", second.Items[0].FinalName)
}

func TestBuild_RecordsSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("12345"), 0o644))
	plan := newPlanner(&stubExtractor{}, mapSuggester{"a.txt": "notes"}).Build(context.Background(), dir, []string{"a.txt"})
	assert.Equal(t, int64(5), plan.Items[0].Size)
}

func TestPlan_ChangesSkipsFixedPoints(t *testing.T) {
	sug := mapSuggester{"ports.png": "ports", "ports_2.png": "ports", "x.png": "syslog"}
	plan := newPlanner(&stubExtractor{}, sug).Build(context.Background(), ".", []string{"ports.png", "ports_2.png", "x.png"})

	changes := plan.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, "x.png", changes[0].OriginalName)
}

func TestState(t *testing.T) {
	assert.Equal(t, "skipped: no content", StateSkippedNoContent.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.False(t, StatePlanned.Terminal())
	assert.True(t, StateRenamed.Terminal())
	assert.True(t, StateSkippedNoSuggestion.Terminal())
}
