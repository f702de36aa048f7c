package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Extractor pulls raw text out of one kind of file.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, path string) (string, error)
}

// Logger is the minimal logging interface needed by Registry.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Registry maps file types to extractors. Lookup tries the lowercased
// extension first and falls back to sniffing the file content.
type Registry struct {
	byExt  map[string]Extractor
	byMIME map[string]Extractor

	MaxChars int  // Cap on cleaned content, in runes. 0 = unlimited.
	Verbose  bool // Debug logging of skipped files.
	Log      Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(maxChars int, log Logger) *Registry {
	return &Registry{
		byExt:    make(map[string]Extractor),
		byMIME:   make(map[string]Extractor),
		MaxChars: maxChars,
		Log:      log,
	}
}

// Register maps extensions (with or without the leading dot, any case) to e.
func (r *Registry) Register(e Extractor, exts ...string) {
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.byExt[ext] = e
	}
}

// RegisterMIME maps MIME types to e. A type of the form "image/*" matches
// every subtype.
func (r *Registry) RegisterMIME(e Extractor, types ...string) {
	for _, t := range types {
		r.byMIME[strings.ToLower(t)] = e
	}
}

// Lookup returns the extractor for path, or ErrNoExtractor.
func (r *Registry) Lookup(path string) (Extractor, error) {
	if e, ok := r.byExt[strings.ToLower(filepath.Ext(path))]; ok {
		return e, nil
	}
	if len(r.byMIME) == 0 {
		return nil, ErrNoExtractor
	}

	m, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: sniff: %v", ErrNoExtractor, err)
	}
	for ; m != nil; m = m.Parent() {
		mt, _, _ := strings.Cut(m.String(), ";")
		mt = strings.ToLower(strings.TrimSpace(mt))
		if e, ok := r.byMIME[mt]; ok {
			return e, nil
		}
		top, _, _ := strings.Cut(mt, "/")
		if e, ok := r.byMIME[top+"/*"]; ok {
			return e, nil
		}
	}
	return nil, ErrNoExtractor
}

// ExtractContent returns the cleaned, capped text of path. Every failure
// (unknown type, tool error, empty result, extractor panic) is logged and
// reported as ok == false; none of them abort the caller.
func (r *Registry) ExtractContent(ctx context.Context, path string) (content string, ok bool) {
	name := filepath.Base(path)

	e, err := r.Lookup(path)
	if err != nil {
		r.Log.Debug(r.Verbose, "%s: %v", name, err)
		return "", false
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.Log.Warn("%s: %s extractor panicked: %v", name, e.Name(), rec)
			content, ok = "", false
		}
	}()

	raw, err := e.Extract(ctx, path)
	if err != nil {
		r.Log.Warn("%s: %s extraction failed: %v", name, e.Name(), err)
		return "", false
	}

	content = Truncate(CleanText(raw), r.MaxChars)
	if content == "" {
		r.Log.Debug(r.Verbose, "%s: %s extraction produced no text", name, e.Name())
		return "", false
	}
	r.Log.Debug(r.Verbose, "%s: %d chars via %s", name, len(content), e.Name())
	return content, true
}
