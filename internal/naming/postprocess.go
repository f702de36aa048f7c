package naming

import (
	"regexp"
	"strings"

	"github.com/srinivassivaratri/namemate/internal/config"
)

// maxCleanLength caps CleanFilename output before the tighter MaxLength.
const maxCleanLength = 50

// Rules is the injectable configuration for suggestion post-processing.
type Rules struct {
	Blacklist       map[string]bool // Rejected tokens (lowercase).
	Abbreviations   []string        // Preferred short forms offered to the model.
	MaxLength       int
	MinLength       int
	GenericPrefixes []string // Original-name prefixes that carry no meaning.
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return FromConfig(config.DefaultConfig().Naming)
}

// FromConfig builds Rules from the naming section of the config.
func FromConfig(nc config.NamingConfig) Rules {
	r := Rules{
		Blacklist:     make(map[string]bool, len(nc.Blacklist)),
		Abbreviations: append([]string(nil), nc.Abbreviations...),
		MaxLength:     nc.MaxLength,
		MinLength:     nc.MinLength,
	}
	for _, w := range nc.Blacklist {
		r.Blacklist[strings.ToLower(strings.TrimSpace(w))] = true
	}
	for _, p := range nc.GenericPrefixes {
		r.GenericPrefixes = append(r.GenericPrefixes, strings.ToLower(p))
	}
	return r
}

// Blacklisted reports whether token is a rejected name.
func (r Rules) Blacklisted(token string) bool {
	return r.Blacklist[strings.ToLower(token)]
}

var (
	reNotFilenameChar = regexp.MustCompile(`[^a-z0-9_]`)
	reUnderscoreRun   = regexp.MustCompile(`_+`)
)

// CleanFilename lowercases text, turns spaces into underscores, drops every
// character outside [a-z0-9_], caps the length, collapses underscore runs
// and trims leading/trailing underscores. Returns "" when nothing is left.
func CleanFilename(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, " ", "_")
	s = reNotFilenameChar.ReplaceAllString(s, "")
	if len(s) > maxCleanLength {
		s = s[:maxCleanLength]
	}
	s = reUnderscoreRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// Normalize turns raw model output into a single lowercase alphanumeric
// token of at most MaxLength characters. Degenerate results (empty, shorter
// than MinLength, or blacklisted) are replaced by [Rules.Fallback] on
// originalName. The bool is false when no usable token exists.
func (r Rules) Normalize(raw, originalName string) (string, bool) {
	token := CleanFilename(stripModelNoise(raw, originalName))
	token = strings.ReplaceAll(token, "_", "")
	token = capLength(token, r.MaxLength)

	if token == "" || len(token) < r.MinLength || r.Blacklisted(token) {
		return r.Fallback(originalName)
	}
	return token, true
}

// stripModelNoise keeps the first non-empty line of the response, removes
// quoting and markdown emphasis, and drops an echoed file extension.
func stripModelNoise(raw, originalName string) string {
	line := ""
	for _, l := range strings.Split(raw, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	line = strings.Trim(line, "\"'`* ")
	if _, ext := SplitExt(originalName); ext != "" && len(line) > len(ext) &&
		strings.EqualFold(line[len(line)-len(ext):], ext) {
		line = line[:len(line)-len(ext)]
	}
	return line
}

func capLength(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
