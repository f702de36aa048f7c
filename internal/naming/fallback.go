package naming

import (
	"regexp"
	"strings"
)

// FallbackRule marks original filenames that carry no meaning (camera
// counters, screenshot stamps, bare dates). Rules are evaluated in order by
// [Rules.Fallback]; the first match rejects the name.
type FallbackRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// GenericNameRules is the ordered rule table for meaningless stems. Stems
// are lowercased before matching.
var GenericNameRules = []FallbackRule{
	{"camera counter", regexp.MustCompile(`^(img|dsc|dscn|dscf|dcim|pxl|mvimg|vid|mov|gopr)[_\-\s]?[0-9]+`)},
	{"screen capture", regexp.MustCompile(`^(screenshot|screen[\s_\-]?shot|screen[\s_\-]?recording|capture|snip)`)},
	{"messenger export", regexp.MustCompile(`^(whatsapp|signal|telegram)[\s_\-](image|video|audio|photo)`)},
	{"timestamp only", regexp.MustCompile(`^[0-9\s._:\-]+$`)},
}

var reWord = regexp.MustCompile(`[a-z]+`)

// Fallback derives a token from the original filename: the first alphabetic
// word of the stem that is at least MinLength long, capped to MaxLength.
// Generic stems (see [GenericNameRules] and GenericPrefixes) and blacklisted
// words yield no result.
func (r Rules) Fallback(originalName string) (string, bool) {
	stem, _ := SplitExt(originalName)
	stem = strings.ToLower(strings.TrimSpace(stem))
	if stem == "" {
		return "", false
	}
	if rule := matchGeneric(stem); rule != "" {
		return "", false
	}
	for _, prefix := range r.GenericPrefixes {
		if prefix != "" && strings.HasPrefix(stem, prefix) {
			return "", false
		}
	}

	for _, word := range reWord.FindAllString(stem, -1) {
		if len(word) < r.MinLength || r.Blacklisted(word) {
			continue
		}
		return capLength(word, r.MaxLength), true
	}
	return "", false
}

// matchGeneric returns the name of the first generic rule matching stem,
// or "" when none does.
func matchGeneric(stem string) string {
	for _, rule := range GenericNameRules {
		if rule.Pattern.MatchString(stem) {
			return rule.Name
		}
	}
	return ""
}
