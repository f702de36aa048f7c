package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextExtractor reads plain-text and HTML files. Only the first MaxBytes
// bytes are read; HTML is reduced to its title and visible body text.
type TextExtractor struct {
	MaxBytes int
}

var htmlExts = map[string]bool{".html": true, ".htm": true, ".xhtml": true}

func (e *TextExtractor) Name() string { return "text" }

// Extract implements [Extractor].
func (e *TextExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if e.MaxBytes > 0 {
		r = io.LimitReader(f, int64(e.MaxBytes))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", ErrBinary
	}

	text := string(data)
	if htmlExts[strings.ToLower(filepath.Ext(path))] || looksLikeHTML(data) {
		text, err = htmlText(data)
		if err != nil {
			return "", err
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

func looksLikeHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data[:min(len(data), 512)]))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}

// htmlText returns the document title followed by the body text with
// scripts and styles removed.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script,style,noscript,template").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())
	body := strings.TrimSpace(doc.Find("body").Text())
	if body == "" {
		body = strings.TrimSpace(doc.Text())
	}
	if title != "" && !strings.HasPrefix(body, title) {
		return title + " " + body, nil
	}
	return body, nil
}
