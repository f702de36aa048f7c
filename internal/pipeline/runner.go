package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/srinivassivaratri/namemate/internal/config"
	"github.com/srinivassivaratri/namemate/internal/display"
	"github.com/srinivassivaratri/namemate/internal/journal"
	"github.com/srinivassivaratri/namemate/internal/planner"
)

// Logger is the logging interface needed by Runner.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Journal records executed renames. *journal.Journal implements it.
type Journal interface {
	BeginRun(directory string) (int64, error)
	Record(journal.Entry) error
}

// Runner wires the collaborators of one batch run.
type Runner struct {
	Config    *config.Config
	Log       Logger
	Extractor planner.Extractor
	Suggester planner.Suggester
	Confirmer Confirmer // Consulted unless Config.AssumeYes.
	Renamer   Renamer
	Journal   Journal   // Optional.
	Out       io.Writer // Preview output; os.Stdout when nil.
}

// Result is the outcome of a run that did not fail fatally.
type Result struct {
	Stats    RunStats
	Plan     *planner.Plan // Kept on decline and dry run.
	Empty    bool          // The directory held no regular files.
	Declined bool
	RunID    int64 // Journal run, 0 when not journaled.
}

// Run executes one batch. The only error is a fatal directory listing
// failure; every per-file problem is logged and counted instead.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	cfg := r.Config
	res := &Result{}

	names, err := Discover(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("cannot list directory %s: %w", cfg.Directory, err)
	}
	res.Stats.Discovered = len(names)
	if len(names) == 0 {
		res.Empty = true
		r.Log.Warn("No files found in %s", cfg.Directory)
		return res, nil
	}
	r.Log.Info("Found %d files in %s", len(names), cfg.Directory)

	limit := cfg.EffectiveLimit()
	truncated := limit > 0 && len(names) > limit
	if truncated {
		names = names[:limit]
		r.Log.Info("Processing first %d files as a test batch", limit)
	}
	res.Stats.Processed = len(names)

	p := &planner.Planner{
		Extractor: r.Extractor,
		Suggester: r.Suggester,
		Log:       r.Log,
		Verbose:   cfg.Verbose,
	}
	plan := p.Build(ctx, cfg.Directory, names)
	res.Plan = plan
	res.Stats.SkippedNoContent = plan.CountState(planner.StateSkippedNoContent)
	res.Stats.SkippedNoSuggestion = plan.CountState(planner.StateSkippedNoSuggestion)
	res.Stats.Planned = len(plan.Items)

	if len(plan.Items) == 0 {
		r.Log.Warn("No files could be processed successfully")
		r.logSummary(res, limit, truncated)
		return res, nil
	}

	if cfg.DryRun || !cfg.AssumeYes {
		display.RenderPreview(r.out(), plan.Items, cfg.PreviewChars)
	}

	if cfg.DryRun {
		res.Stats.DryRun = true
		for _, fc := range plan.Changes() {
			r.Log.Success("[DRY] Would rename %s -> %s", fc.OriginalName, fc.FinalName)
		}
		r.logSummary(res, limit, truncated)
		return res, nil
	}

	if !cfg.AssumeYes {
		ok, err := r.Confirmer.Confirm(ConfirmPrompt)
		if err != nil {
			r.Log.Warn("Could not read confirmation: %v", err)
		}
		if !ok {
			res.Declined = true
			res.Stats.Declined = true
			r.Log.Warn("Renaming cancelled")
			for _, fc := range plan.Items {
				r.Log.Debug(cfg.Verbose, "  plan: %s -> %s", fc.OriginalName, fc.FinalName)
			}
			r.logSummary(res, limit, truncated)
			return res, nil
		}
	}

	r.execute(res)
	r.logSummary(res, limit, truncated)
	return res, nil
}

// execute applies every planned item in order. A failed item is recorded
// and the next one is attempted.
func (r *Runner) execute(res *Result) {
	plan := res.Plan
	if r.Journal != nil {
		id, err := r.Journal.BeginRun(plan.Directory)
		if err != nil {
			r.Log.Warn("Rename journal unavailable: %v", err)
		} else {
			res.RunID = id
		}
	}

	for _, fc := range plan.Items {
		switch {
		case fc.FinalName == fc.OriginalName:
			fc.State = planner.StateUnchanged
			res.Stats.Unchanged++
			r.Log.Info("Unchanged: %s", fc.OriginalName)
		default:
			if err := r.Renamer.Rename(plan.Directory, fc.OriginalName, fc.FinalName); err != nil {
				fc.State = planner.StateRenameFailed
				fc.Err = err
				res.Stats.Failed++
				r.Log.Error("Could not rename %s: %v", fc.OriginalName, err)
			} else {
				fc.State = planner.StateRenamed
				res.Stats.Renamed++
				r.Log.Success("Renamed: %s -> %s", fc.OriginalName, fc.FinalName)
			}
		}
		r.record(res.RunID, plan.Directory, fc)
	}
}

func (r *Runner) record(runID int64, dir string, fc *planner.FileCandidate) {
	if r.Journal == nil || runID == 0 {
		return
	}
	e := journal.Entry{
		RunID:     runID,
		Directory: dir,
		OldName:   fc.OriginalName,
		NewName:   fc.FinalName,
		Status:    fc.State.String(),
	}
	if fc.Err != nil {
		e.Error = fc.Err.Error()
	}
	if err := r.Journal.Record(e); err != nil {
		r.Log.Warn("Journal: %v", err)
	}
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Runner) logSummary(res *Result, limit int, truncated bool) {
	s := &res.Stats
	r.Log.Info("==============================")
	r.Log.Info("Discovered: %d, processed: %d", s.Discovered, s.Processed)
	r.Log.Info("Skipped: %d (no content: %d, no suggestion: %d)",
		s.Skipped(), s.SkippedNoContent, s.SkippedNoSuggestion)

	switch {
	case s.DryRun:
		r.Log.Info("Planned: %d (dry run, nothing renamed)", s.Planned)
	case s.Declined:
		r.Log.Info("Planned: %d, renamed: 0 (cancelled)", s.Planned)
	default:
		r.Log.Info("Done: %d renamed, %d unchanged, %d failed", s.Renamed, s.Unchanged, s.Failed)
	}

	if truncated {
		r.Log.Info("This was a test run with %d files.", limit)
		r.Log.Info("If you're satisfied with the results, run without --test to process all files.")
	}
}
