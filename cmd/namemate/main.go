// Command namemate renames the files of one directory after their content:
// text is extracted (OCR, documents, speech), a language model proposes a
// short name, and the resulting plan is previewed and confirmed before any
// file is touched.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/srinivassivaratri/namemate/internal/check"
	"github.com/srinivassivaratri/namemate/internal/config"
	"github.com/srinivassivaratri/namemate/internal/display"
	"github.com/srinivassivaratri/namemate/internal/extract"
	"github.com/srinivassivaratri/namemate/internal/journal"
	"github.com/srinivassivaratri/namemate/internal/logging"
	"github.com/srinivassivaratri/namemate/internal/pipeline"
	"github.com/srinivassivaratri/namemate/internal/planner"
	"github.com/srinivassivaratri/namemate/internal/suggest"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "namemate: %v\n", err)
		return 1
	}
	cfg.ResolveEnv(os.Getenv)
	cfg.ApplyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "namemate: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "namemate: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout, version)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	log.Info("=== namemate v%s (%s) ===", version, commit)
	log.Info("Directory: %s", cfg.Directory)
	if cfg.ConfigFile != "" {
		log.Debug(cfg.Verbose, "Config file: %s", cfg.ConfigFile)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	for _, w := range check.CheckDeps(&cfg) {
		log.Warn("%v", w)
	}

	// Phase 3: Collaborators.
	ctx := context.Background()

	var suggester planner.Suggester
	completer, err := suggest.NewCompleter(ctx, cfg.LLM)
	switch {
	case errors.Is(err, suggest.ErrNoAPIKey):
		suggester = suggest.Unavailable{}
	case err != nil:
		log.Error("%v", err)
		return 1
	default:
		s, err := suggest.NewLLMSuggester(&cfg, completer, log)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		suggester = s
	}

	var transcriber extract.Transcriber
	if cfg.Extract.TranscriptionAPIKey != "" {
		transcriber = extract.NewWhisperTranscriber(
			cfg.Extract.TranscriptionAPIKey,
			cfg.Extract.TranscriptionBaseURL,
			cfg.Extract.TranscriptionModel,
		)
	}
	registry := extract.NewDefaultRegistry(cfg.Extract, cfg.Verbose, transcriber, log)

	runner := &pipeline.Runner{
		Config:    &cfg,
		Log:       log,
		Extractor: registry,
		Suggester: suggester,
		Confirmer: pipeline.PromptConfirmer{In: os.Stdin, Out: os.Stdout},
		Renamer:   pipeline.FSRenamer{},
		Out:       os.Stdout,
	}

	if cfg.JournalPath != "" && !cfg.DryRun {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			log.Warn("Rename journal disabled: %v", err)
		} else {
			defer j.Close()
			runner.Journal = j
			log.Info("Journal: %s", j.Path())
		}
	}
	log.Info("")

	// Phase 4: Run (discover -> extract -> suggest -> plan -> confirm -> rename).
	res, err := runner.Run(ctx)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if res.RunID != 0 {
		log.Debug(cfg.Verbose, "Journal run id: %d", res.RunID)
	}
	return 0
}
