package planner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/srinivassivaratri/namemate/internal/naming"
)

// Extractor returns cleaned text content for a file, or ok == false.
type Extractor interface {
	ExtractContent(ctx context.Context, path string) (string, bool)
}

// Suggester returns a base name for extracted content, or ok == false.
type Suggester interface {
	SuggestName(ctx context.Context, content, originalName string) (string, bool)
}

// Logger is the minimal logging interface needed by Planner.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Planner runs extraction and suggestion for each listed file, one at a
// time, and allocates final names.
type Planner struct {
	Extractor Extractor
	Suggester Suggester
	Log       Logger
	Verbose   bool
}

// Build plans renames for names (base names inside dir, in listing order).
// Collaborator failures skip the file and never abort the pass. Every call
// starts from a fresh NameCounter.
func (p *Planner) Build(ctx context.Context, dir string, names []string) *Plan {
	plan := &Plan{Directory: dir, Counter: naming.NewNameCounter()}

	for i, name := range names {
		fc := &FileCandidate{
			OriginalName: name,
			Path:         filepath.Join(dir, name),
			State:        StateListed,
		}
		if fi, err := os.Lstat(fc.Path); err == nil {
			fc.Size = fi.Size()
		}
		p.Log.Info("[%d/%d] %s", i+1, len(names), name)

		content, ok := p.Extractor.ExtractContent(ctx, fc.Path)
		if !ok {
			fc.State = StateSkippedNoContent
			p.Log.Warn("No content extracted from %s", name)
			plan.Skipped = append(plan.Skipped, fc)
			continue
		}
		fc.ExtractedContent = content
		fc.State = StateExtracted

		base, ok := p.Suggester.SuggestName(ctx, content, name)
		if !ok {
			fc.State = StateSkippedNoSuggestion
			p.Log.Warn("No name suggestion for %s", name)
			plan.Skipped = append(plan.Skipped, fc)
			continue
		}
		fc.SuggestedBaseName = base
		fc.State = StateSuggested

		_, ext := naming.SplitExt(name)
		fc.FinalName = plan.Counter.Allocate(base, ext)
		fc.State = StatePlanned
		plan.Items = append(plan.Items, fc)
		p.Log.Debug(p.Verbose, "  -> %s", fc.FinalName)
	}
	return plan
}
