// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for tesseract, ffmpeg, ffprobe and the
// model API keys.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/srinivassivaratri/namemate/internal/config"
)

// Sentinel errors reported by CheckDeps.
var (
	ErrTesseractNotFound = errors.New("tesseract not found on PATH (images will be skipped)")
	ErrFfmpegNotFound    = errors.New("ffmpeg not found on PATH (audio and video will be skipped)")
	ErrFfprobeNotFound   = errors.New("ffprobe not found on PATH (video will be skipped)")
	ErrNoTranscriberKey  = errors.New("no transcription API key (audio and video will be skipped)")
	ErrNoLLMKey          = errors.New("no API key for the naming model")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// tool is one external program and the flag that prints its version.
type tool struct {
	label       string
	path        string
	versionFlag string
	missing     error
}

func tools(cfg *config.Config) []tool {
	return []tool{
		{"tesseract", cfg.Extract.TesseractPath, "--version", ErrTesseractNotFound},
		{"ffmpeg", cfg.Extract.FFmpegPath, "-version", ErrFfmpegNotFound},
		{"ffprobe", cfg.Extract.FFprobePath, "-version", ErrFfprobeNotFound},
	}
}

// RunCheck runs the interactive --check flow: prints availability of each
// extraction tool, the configured model and which API keys are present.
// It returns false when the naming model cannot be used.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	for _, t := range tools(cfg) {
		checkTool(log, t)
	}

	if cfg.ConfigFile != "" {
		log.Info("Config file: %s", cfg.ConfigFile)
	}
	log.Info("Model: %s (%s)", cfg.LLM.Model, cfg.LLM.Provider)
	if cfg.LLM.Provider == config.ProviderOpenAI {
		log.Info("Endpoint: %s", cfg.LLM.BaseURL)
	}

	ok := true
	if cfg.LLM.APIKey == "" {
		log.Error("%v: %s", ErrNoLLMKey, keyHint(cfg.LLM.Provider))
		ok = false
	} else {
		log.Success("Naming model API key: set")
	}
	if cfg.Extract.TranscriptionAPIKey == "" {
		log.Warn("%v: set OPENAI_API_KEY", ErrNoTranscriberKey)
	} else {
		log.Success("Transcription API key: set (%s)", cfg.Extract.TranscriptionModel)
	}
	return ok
}

// checkTool verifies a tool is on PATH and logs its version string.
func checkTool(log Logger, t tool) {
	if _, err := exec.LookPath(t.path); err != nil {
		log.Error("%s not found", t.label)
		return
	}
	out, err := exec.Command(t.path, t.versionFlag).CombinedOutput()
	if err != nil {
		log.Warn("%s found but %s failed: %v", t.label, t.versionFlag, err)
		return
	}
	log.Success("%s: %s", t.label, firstLine(string(out)))
}

// CheckDeps is the pre-run validation. Every missing piece only disables
// part of the run (file types, or naming itself), so all are warnings.
func CheckDeps(cfg *config.Config) []error {
	var warnings []error
	for _, t := range tools(cfg) {
		if _, err := exec.LookPath(t.path); err != nil {
			warnings = append(warnings, t.missing)
		}
	}
	if cfg.Extract.TranscriptionAPIKey == "" {
		warnings = append(warnings, ErrNoTranscriberKey)
	}
	if cfg.LLM.APIKey == "" {
		warnings = append(warnings, fmt.Errorf("%w (every file will be skipped): %s", ErrNoLLMKey, keyHint(cfg.LLM.Provider)))
	}
	return warnings
}

func keyHint(p config.Provider) string {
	if p == config.ProviderGemini {
		return "set GEMINI_API_KEY or llm.api_key"
	}
	return "set GROQ_API_KEY (or OPENAI_API_KEY) or llm.api_key"
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
