package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into target, behavior, model, display, and utility.
// The YAML config file sits between defaults and flags, so flags are parsed
// twice: once to find --config, once more on top of the loaded file.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors returned by ParseFlags when the user asked for output that
// ends the program successfully.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// ParseFlags parses args (without the program name) into cfg, loading the
// YAML config file in between defaults and flags. On --help or --version it
// prints and returns ErrHelp / ErrVersion.
func ParseFlags(cfg *Config, args []string, version string) error {
	// Pass 1: locate --config and catch usage errors before touching cfg.
	scratch := *cfg
	var pre extraFlags
	if err := parseInto(&scratch, &pre, args, version); err != nil {
		return err
	}
	if pre.showHelp {
		printUsage(os.Stderr, version)
		return ErrHelp
	}
	if pre.showVersion {
		fmt.Fprintln(os.Stdout, "namemate v"+version)
		return ErrVersion
	}

	if err := LoadFile(cfg, scratch.ConfigFile); err != nil {
		return err
	}

	// Pass 2: flags override whatever the file set.
	var n extraFlags
	if err := parseInto(cfg, &n, args, version); err != nil {
		return err
	}
	applyExtraFlags(cfg, &n)
	return expandPaths(cfg)
}

// extraFlags holds flags that are applied after Parse rather than bound
// directly to a Config field.
type extraFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
	positional  []string
}

func parseInto(cfg *Config, n *extraFlags, args []string, version string) error {
	fs := flag.NewFlagSet("namemate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	defineTargetFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineModelFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, n)
	defineUtilityFlags(fs, n)

	if err := fs.Parse(args); err != nil {
		return err
	}
	n.positional = fs.Args()
	if len(n.positional) > 1 {
		return fmt.Errorf("expected at most one directory argument, got %d", len(n.positional))
	}
	if len(n.positional) == 1 {
		cfg.Directory = n.positional[0]
	}
	return nil
}

// defineTargetFlags registers -d/--directory and --config.
func defineTargetFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Directory, "directory", cfg.Directory, "Directory to rename files in")
	fs.StringVar(&cfg.Directory, "d", cfg.Directory, "Same as --directory")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
}

// defineBehaviorFlags registers yes, test, limit, dry-run, journal.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.AssumeYes, "yes", cfg.AssumeYes, "Do not ask for confirmation before renaming")
	fs.BoolVar(&cfg.AssumeYes, "y", cfg.AssumeYes, "Same as --yes")
	fs.BoolVar(&cfg.TestMode, "test", cfg.TestMode, "Process only the first test_batch_size files")
	fs.BoolVar(&cfg.TestMode, "t", cfg.TestMode, "Same as --test")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "Process only the first N files")
	fs.IntVar(&cfg.Limit, "n", cfg.Limit, "Same as --limit")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Show the plan; do not rename")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "Record renames in a SQLite journal")
}

// defineModelFlags registers --provider and --model.
func defineModelFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&providerValue{&cfg.LLM.Provider}, "provider", "LLM provider: openai | gemini")
	fs.StringVar(&cfg.LLM.Model, "model", cfg.LLM.Model, "LLM model name")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *extraFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", cfg.CheckOnly, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", cfg.CheckOnly, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *extraFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyExtraFlags copies color overrides into cfg and normalizes the directory.
func applyExtraFlags(cfg *Config, n *extraFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.Directory = NormalizeDirArg(cfg.Directory)
}

// expandPaths resolves "~" in every user-supplied path.
func expandPaths(cfg *Config) error {
	for _, p := range []*string{&cfg.Directory, &cfg.JournalPath, &cfg.LogFile} {
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "namemate v" + version + " - rename files after their content"},
		{"", ""},
		{"  namemate [OPTIONS] [directory]", ""},
		{"", ""},
		{"Target", ""},
		{"  -d, --directory <path>", "Directory to rename files in (default: .)"},
		{"  --config <path>", "YAML config (default: " + DefaultConfigPath + ")"},
		{"", ""},
		{"Behavior", ""},
		{"  -y, --yes", "Do not ask for confirmation before renaming"},
		{"  -t, --test", fmt.Sprintf("Process only the first %d files (test_batch_size)", DefaultTestBatchSize)},
		{"  -n, --limit <N>", "Process only the first N files"},
		{"  --dry-run", "Show the plan; do not rename"},
		{"  --journal <path>", "Record renames in a SQLite journal"},
		{"", ""},
		{"Model", ""},
		{"  --provider <openai|gemini>", "LLM provider (default: openai, Groq endpoint)"},
		{"  --model <name>", "LLM model (default: " + DefaultModel + ")"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (tesseract, ffmpeg, API keys)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the Provider enum can be used with flag.Var.

type providerValue struct{ p *Provider }

func (v *providerValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *providerValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "openai":
		*v.p = ProviderOpenAI
	case "gemini":
		*v.p = ProviderGemini
	default:
		return fmt.Errorf("invalid provider %q (use 'openai' or 'gemini')", s)
	}
	return nil
}
