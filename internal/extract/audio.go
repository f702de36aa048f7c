package extract

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AudioExtractor clips the file to a mono 16 kHz MP3 with ffmpeg and
// transcribes the clip. The temporary clip is removed on every path.
type AudioExtractor struct {
	Runner      CommandRunner
	FFmpeg      string
	MaxSeconds  int // 0 = whole file.
	Transcriber Transcriber
}

func (e *AudioExtractor) Name() string { return "audio" }

// Extract implements [Extractor].
func (e *AudioExtractor) Extract(ctx context.Context, path string) (string, error) {
	if e.Transcriber == nil {
		return "", ErrNoTranscriber
	}

	tmp, err := os.CreateTemp("", "namemate-clip-*.mp3")
	if err != nil {
		return "", fmt.Errorf("clip temp file: %w", err)
	}
	clip := tmp.Name()
	tmp.Close()
	defer os.Remove(clip)

	if _, err := e.Runner.Run(ctx, e.FFmpeg, clipArgs(path, clip, e.MaxSeconds)...); err != nil {
		return "", err
	}

	text, err := e.Transcriber.Transcribe(ctx, clip)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// clipArgs builds the ffmpeg arguments for the transcription clip.
func clipArgs(in, out string, maxSeconds int) []string {
	args := []string{
		"-hide_banner", "-nostdin", "-y",
		"-i", in,
		"-vn", "-map", "0:a:0",
		"-ac", "1", "-ar", "16000",
	}
	if maxSeconds > 0 {
		args = append(args, "-t", strconv.Itoa(maxSeconds))
	}
	return append(args, "-c:a", "libmp3lame", "-b:a", "64k", "-f", "mp3", out)
}
