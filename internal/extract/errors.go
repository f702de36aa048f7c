package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrNoExtractor   = errors.New("no extractor for file type")
	ErrEmpty         = errors.New("no text extracted")
	ErrBinary        = errors.New("file looks binary")
	ErrNoAudioStream = errors.New("no audio stream")
	ErrInvalidData   = errors.New("invalid or unsupported media data")
	ErrOCRLanguage   = errors.New("tesseract language data missing")
	ErrToolNotFound  = errors.New("tool not found on PATH")
	ErrNoTranscriber = errors.New("no transcriber configured")
)

// Pre-compiled stderr patterns, checked in order by classifyStderr.
var (
	reNoAudioStream = regexp.MustCompile(
		`(?i)does not contain any stream|` +
			`Stream map '.*' matches no streams|` +
			`Output file .* does not contain any stream`)

	reInvalidData = regexp.MustCompile(
		`(?i)Invalid data found when processing input|` +
			`moov atom not found|` +
			`could not find codec parameters|` +
			`Error reading image|` +
			`Unsupported image format`)

	reOCRLanguage = regexp.MustCompile(
		`(?i)Error opening data file|Failed loading language`)
)

// classifyStderr maps tool stderr to a sentinel error, or nil when nothing
// known matches.
func classifyStderr(stderr string) error {
	switch {
	case reNoAudioStream.MatchString(stderr):
		return ErrNoAudioStream
	case reInvalidData.MatchString(stderr):
		return ErrInvalidData
	case reOCRLanguage.MatchString(stderr):
		return ErrOCRLanguage
	}
	return nil
}

// ToolError is a failed external tool run. Kind is the classified sentinel
// (nil when stderr matched nothing); both Kind and Err are reachable through
// errors.Is.
type ToolError struct {
	Tool   string
	Stderr string
	Kind   error
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Tool, e.Err)
	if e.Kind != nil {
		msg = fmt.Sprintf("%s: %v (%v)", e.Tool, e.Kind, e.Err)
	}
	if last := lastLine(e.Stderr); last != "" {
		msg += ": " + last
	}
	return msg
}

func (e *ToolError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
