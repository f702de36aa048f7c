package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reNotContentChar = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	reWhitespaceRun  = regexp.MustCompile(`\s+`)
)

// CleanText replaces every character other than letters, digits, '_', '-'
// and whitespace with a space, then collapses whitespace runs.
func CleanText(s string) string {
	s = strings.ToValidUTF8(s, " ")
	s = reNotContentChar.ReplaceAllString(s, " ")
	s = reWhitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate caps s at n runes. n <= 0 means no cap.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return strings.TrimSpace(s[:pos])
		}
		i++
	}
	return s
}
