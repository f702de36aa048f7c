package suggest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/srinivassivaratri/namemate/internal/config"
	"github.com/srinivassivaratri/namemate/internal/naming"
)

// Logger is the minimal logging interface needed by LLMSuggester.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// defaultRetryBase is the first backoff delay.
const defaultRetryBase = time.Second

// LLMSuggester turns extracted content into a normalized filename token.
type LLMSuggester struct {
	Completer Completer
	Prompt    *PromptBuilder
	Language  *LanguageHint // nil disables the language hint.
	Rules     naming.Rules
	Limiter   *rate.Limiter // nil disables throttling.

	Timeout    time.Duration // Per call. 0 = caller's context only.
	MaxRetries int
	RetryBase  time.Duration

	Log     Logger
	Verbose bool
}

// NewLLMSuggester wires a suggester from cfg around c.
func NewLLMSuggester(cfg *config.Config, c Completer, log Logger) (*LLMSuggester, error) {
	hint, err := NewLanguageHint(cfg.Languages)
	if err != nil {
		return nil, err
	}
	s := &LLMSuggester{
		Completer:  c,
		Prompt:     NewPromptBuilder("", cfg.Naming.Abbreviations, cfg.Naming.MaxLength),
		Language:   hint,
		Rules:      naming.FromConfig(cfg.Naming),
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
		RetryBase:  defaultRetryBase,
		Log:        log,
		Verbose:    cfg.Verbose,
	}
	if rpm := cfg.LLM.RequestsPerMinute; rpm > 0 {
		s.Limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	}
	return s, nil
}

// SuggestName returns a base name for content. ok is false when the model
// call fails or neither its reply nor originalName yields a usable token;
// the caller then skips the file.
func (s *LLMSuggester) SuggestName(ctx context.Context, content, originalName string) (string, bool) {
	if strings.TrimSpace(content) == "" {
		return "", false
	}

	prompt, err := s.Prompt.Build(content, s.Language.Detect(content))
	if err != nil {
		s.Log.Warn("%s: %v", originalName, err)
		return "", false
	}

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		s.Log.Warn("%s: name suggestion failed: %v", originalName, err)
		return "", false
	}
	s.Log.Debug(s.Verbose, "%s: model replied %q", originalName, raw)

	name, ok := s.Rules.Normalize(raw, originalName)
	if !ok {
		s.Log.Debug(s.Verbose, "%s: reply %q unusable and no fallback from filename", originalName, raw)
	}
	return name, ok
}

// Unavailable stands in for the model when no API key is configured. It
// never suggests a name, so every file is skipped without failing the run.
type Unavailable struct{}

// SuggestName always reports no suggestion.
func (Unavailable) SuggestName(context.Context, string, string) (string, bool) {
	return "", false
}

// complete calls the model, retrying transient failures with backoff.
func (s *LLMSuggester) complete(ctx context.Context, prompt string) (string, error) {
	rs := NewRetryState(s.MaxRetries, s.RetryBase)
	for {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return "", fmt.Errorf("rate limiter: %w", err)
			}
		}

		out, err := s.call(ctx, prompt)
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return "", err
		}

		action := rs.Advance(err)
		if action == RetryNone {
			return "", err
		}
		delay := rs.Delay(action)
		s.Log.Debug(s.Verbose, "completion %s, retry %d/%d in %s", action, rs.Attempt, rs.MaxRetries, delay)

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return "", ctx.Err()
		case <-t.C:
		}
	}
}

func (s *LLMSuggester) call(ctx context.Context, prompt string) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	return s.Completer.Complete(ctx, prompt)
}
