package extract

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nfnt/resize"
)

// ImageExtractor runs tesseract OCR. Images narrower than MinWidth are
// upscaled into a temporary PNG first; formats Go cannot decode are passed
// to tesseract unchanged.
type ImageExtractor struct {
	Runner        CommandRunner
	Tesseract     string
	Language      string
	PageSegMode   int
	MinConfidence int
	MinWidth      int // 0 disables upscaling.
}

func (e *ImageExtractor) Name() string { return "image" }

// Extract implements [Extractor].
func (e *ImageExtractor) Extract(ctx context.Context, path string) (string, error) {
	src := path
	if e.MinWidth > 0 {
		scaled, err := upscale(path, e.MinWidth)
		if err != nil {
			return "", err
		}
		if scaled != "" {
			defer os.Remove(scaled)
			src = scaled
		}
	}

	out, err := e.Runner.Run(ctx, e.Tesseract, src, "stdout",
		"--psm", strconv.Itoa(e.PageSegMode),
		"--oem", "3",
		"-l", e.Language,
		"tsv",
	)
	if err != nil {
		return "", err
	}

	words := ParseTSV(out, e.MinConfidence)
	if len(words) == 0 {
		return "", ErrEmpty
	}
	return strings.Join(words, " "), nil
}

// ParseTSV returns the words of tesseract TSV output whose confidence is
// above minConf and whose text is longer than one character, in reading
// order. The header row and non-word rows (conf -1) are skipped.
func ParseTSV(data []byte, minConf int) []string {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		cols := strings.Split(sc.Text(), "\t")
		if len(cols) < 12 {
			continue
		}
		conf, err := strconv.ParseFloat(strings.TrimSpace(cols[10]), 64)
		if err != nil || conf <= float64(minConf) {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if len([]rune(text)) <= 1 {
			continue
		}
		words = append(words, text)
	}
	return words
}

// upscale writes a Lanczos3-resized copy of path to a temp PNG when the
// image is narrower than minWidth. It returns "" when no copy is needed or
// the format is not decodable here.
func upscale(path string, minWidth int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width >= minWidth || cfg.Width == 0 {
		return "", nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return "", nil
	}

	scaled := resize.Resize(uint(minWidth), 0, img, resize.Lanczos3)

	tmp, err := os.CreateTemp("", "namemate-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("upscale temp file: %w", err)
	}
	if err := png.Encode(tmp, scaled); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("upscale encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
