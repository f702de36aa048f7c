package suggest

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// minHintChars is the shortest content worth running detection on.
const minHintChars = 20

// LanguageHint detects the language of extracted content among a
// configured set. A nil *LanguageHint detects nothing.
type LanguageHint struct {
	detector lingua.LanguageDetector
}

// NewLanguageHint builds a detector for the named languages (case
// insensitive, e.g. "english", "German"). Fewer than two languages disables
// detection and returns nil.
func NewLanguageHint(names []string) (*LanguageHint, error) {
	known := make(map[string]lingua.Language)
	for _, l := range lingua.AllLanguages() {
		known[strings.ToLower(l.String())] = l
	}

	var langs []lingua.Language
	for _, n := range names {
		l, ok := known[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("unknown language %q", n)
		}
		langs = append(langs, l)
	}
	if len(langs) < 2 {
		return nil, nil
	}

	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		WithMinimumRelativeDistance(0.1).
		Build()
	return &LanguageHint{detector: d}, nil
}

// Detect returns the language name of text, or "" when text is short or
// the detector is unsure.
func (h *LanguageHint) Detect(text string) string {
	if h == nil || len(strings.TrimSpace(text)) < minHintChars {
		return ""
	}
	lang, ok := h.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.String()
}
