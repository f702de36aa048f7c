// Package config holds runtime configuration: defaults, CLI flag parsing, the
// optional YAML config file, and validation. Defaults match the original
// rename script so an empty config file changes nothing.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// --- Enum types for validated string fields ---

// Provider selects the language-model backend used for name suggestions.
type Provider string

const (
	ProviderOpenAI Provider = "openai" // Any OpenAI-compatible endpoint (default: Groq).
	ProviderGemini Provider = "gemini" // Google Gemini API via genai.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// LLMConfig configures the naming-suggestion backend.
type LLMConfig struct {
	Provider          Provider      `yaml:"provider"`
	Model             string        `yaml:"model"`
	APIKey            string        `yaml:"api_key"`  // Supports ${VAR}.
	BaseURL           string        `yaml:"base_url"` // OpenAI-compatible endpoint override.
	Temperature       float64       `yaml:"temperature"`
	MaxTokens         int           `yaml:"max_tokens"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute"` // 0 disables throttling.
	MaxRetries        int           `yaml:"max_retries"`
}

// NamingConfig is the injectable rule set for suggestion post-processing.
type NamingConfig struct {
	Blacklist       []string `yaml:"blacklist"`
	Abbreviations   []string `yaml:"abbreviations"`
	MaxLength       int      `yaml:"max_length"`
	MinLength       int      `yaml:"min_length"`
	GenericPrefixes []string `yaml:"generic_prefixes"`
}

// ExtractConfig configures content extraction tools.
type ExtractConfig struct {
	OCRLanguage          string `yaml:"ocr_language"`
	OCRPageSegMode       int    `yaml:"ocr_psm"`
	OCRMinConfidence     int    `yaml:"ocr_min_confidence"`
	OCRMinWidth          int    `yaml:"ocr_min_width"` // Narrower images are upscaled before OCR.
	TesseractPath        string `yaml:"tesseract_path"`
	FFmpegPath           string `yaml:"ffmpeg_path"`
	FFprobePath          string `yaml:"ffprobe_path"`
	TranscriptionModel   string `yaml:"transcription_model"`
	TranscriptionAPIKey  string `yaml:"transcription_api_key"`
	TranscriptionBaseURL string `yaml:"transcription_base_url"`
	MaxContentChars      int    `yaml:"max_content_chars"`
	PDFMaxPages          int    `yaml:"pdf_max_pages"`
	MediaMaxSeconds      int    `yaml:"media_max_seconds"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// overlaid by [LoadFile] and finally mutated by [ParseFlags] before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Target (set from --directory).
	Directory string

	// Behavior flags.
	AssumeYes bool // --yes: skip the confirmation prompt.
	DryRun    bool // Build and show the plan, rename nothing.
	TestMode  bool // --test: limit to TestBatchSize files.
	Limit     int  // 0 = no limit. Pre-filter on the directory listing.

	TestBatchSize int // Default: 10.
	PreviewChars  int // Default: 100. Content shown per preview entry.

	// Collaborators.
	LLM       LLMConfig
	Naming    NamingConfig
	Extract   ExtractConfig
	Languages []string // Candidate languages for the prompt language hint.

	// Optional rename journal (SQLite). Empty disables it.
	JournalPath string

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
	ConfigFile string    // --config path; after LoadFile, the file actually read.
}

// Default values shared by DefaultConfig and the flag help text.
const (
	DefaultBaseURL       = "https://api.groq.com/openai/v1"
	DefaultModel         = "mixtral-8x7b-32768"
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultTestBatchSize = 10
)

// DefaultConfig returns a Config with all defaults matching the original
// script's behavior. API keys stay empty; see [Config.ResolveEnv].
func DefaultConfig() Config {
	return Config{
		Directory:     ".",
		TestBatchSize: DefaultTestBatchSize,
		PreviewChars:  100,
		LLM: LLMConfig{
			Provider:          ProviderOpenAI,
			Model:             DefaultModel,
			BaseURL:           DefaultBaseURL,
			Temperature:       0.1,
			MaxTokens:         20,
			Timeout:           60 * time.Second,
			RequestsPerMinute: 30,
			MaxRetries:        2,
		},
		Naming: NamingConfig{
			Blacklist: []string{"error", "unknown", "image", "screenshot"},
			Abbreviations: []string{
				"config", "auth", "admin", "docs", "dev", "prod", "api",
				"db", "app", "sys", "net", "log", "ui", "cli",
			},
			MaxLength:       15,
			MinLength:       3,
			GenericPrefixes: []string{"screenshot", "screen shot", "scan", "untitled", "image"},
		},
		Extract: ExtractConfig{
			OCRLanguage:        "eng",
			OCRPageSegMode:     6,
			OCRMinConfidence:   30,
			OCRMinWidth:        1000,
			TesseractPath:      "tesseract",
			FFmpegPath:         "ffmpeg",
			FFprobePath:        "ffprobe",
			TranscriptionModel: "whisper-1",
			MaxContentChars:    2000,
			PDFMaxPages:        3,
			MediaMaxSeconds:    120,
		},
		Languages: []string{"english", "spanish", "french", "german"},
		ColorMode: ColorAuto,
	}
}

// ResolveEnv fills API keys that are still empty from the environment.
// GROQ_API_KEY is the original default; OPENAI_API_KEY and GEMINI_API_KEY
// cover the other backends. lookup is os.Getenv in production.
func (c *Config) ResolveEnv(lookup func(string) string) {
	if c.LLM.APIKey == "" {
		switch c.LLM.Provider {
		case ProviderGemini:
			c.LLM.APIKey = lookup("GEMINI_API_KEY")
		default:
			c.LLM.APIKey = lookup("GROQ_API_KEY")
			if c.LLM.APIKey == "" {
				c.LLM.APIKey = lookup("OPENAI_API_KEY")
			}
		}
	}
	if c.Extract.TranscriptionAPIKey == "" {
		c.Extract.TranscriptionAPIKey = lookup("OPENAI_API_KEY")
	}
}

// ApplyProviderDefaults swaps provider-specific defaults that still hold the
// OpenAI-compatible values, so "--provider gemini" works without --model.
func (c *Config) ApplyProviderDefaults() {
	if c.LLM.Provider == ProviderGemini && c.LLM.Model == DefaultModel {
		c.LLM.Model = DefaultGeminiModel
	}
}

// EffectiveLimit returns the batch-size pre-filter: an explicit --limit wins,
// --test falls back to TestBatchSize, otherwise 0 (no limit).
func (c *Config) EffectiveLimit() int {
	if c.Limit > 0 {
		return c.Limit
	}
	if c.TestMode {
		return c.TestBatchSize
	}
	return 0
}

// NormalizeDirArg strips trailing slashes from a directory path and, on
// Linux, converts a Windows drive path ("C:\Users\me") to its WSL mount
// ("/mnt/c/Users/me"). The filesystem root "/" is returned unchanged.
func NormalizeDirArg(path string) string {
	return normalizeDirArg(path, runtime.GOOS)
}

func normalizeDirArg(path, goos string) string {
	if goos == "linux" {
		path = windowsToWSL(path)
	}
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// windowsToWSL rewrites "X:\rest" or "X:/rest" to "/mnt/x/rest".
func windowsToWSL(path string) string {
	if len(path) < 2 || path[1] != ':' {
		return path
	}
	drive := path[0]
	if !(drive >= 'a' && drive <= 'z' || drive >= 'A' && drive <= 'Z') {
		return path
	}
	rest := strings.ReplaceAll(path[2:], `\`, "/")
	return "/mnt/" + strings.ToLower(string(drive)) + rest
}

// Validate checks enum fields and numeric ranges. When not in CheckOnly mode
// it also requires a target directory.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini:
		// valid
	default:
		return fmt.Errorf("invalid llm provider %q (use 'openai' or 'gemini')", c.LLM.Provider)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q", c.ColorMode)
	}

	if c.LLM.Model == "" {
		return errors.New("llm model must not be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm temperature %v out of range [0, 2]", c.LLM.Temperature)
	}
	if c.LLM.MaxRetries < 0 {
		return errors.New("llm max_retries must not be negative")
	}
	if c.Naming.MaxLength <= 0 {
		return errors.New("naming max_length must be positive")
	}
	if c.Naming.MinLength < 0 || c.Naming.MinLength > c.Naming.MaxLength {
		return fmt.Errorf("naming min_length %d must be between 0 and max_length %d",
			c.Naming.MinLength, c.Naming.MaxLength)
	}
	if c.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	if c.TestBatchSize <= 0 {
		return errors.New("test_batch_size must be positive")
	}
	if c.Extract.MaxContentChars <= 0 {
		return errors.New("extract max_content_chars must be positive")
	}

	if c.CheckOnly {
		return nil
	}
	if c.Directory == "" {
		return errors.New("need a target directory")
	}
	return nil
}
