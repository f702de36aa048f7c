package extract

import (
	"context"
	"fmt"
)

// VideoExtractor transcribes the first audio track of a video. Files
// without an audio stream fail with ErrNoAudioStream before ffmpeg runs.
type VideoExtractor struct {
	Runner  CommandRunner
	FFprobe string
	Audio   *AudioExtractor
}

func (e *VideoExtractor) Name() string { return "video" }

// Extract implements [Extractor].
func (e *VideoExtractor) Extract(ctx context.Context, path string) (string, error) {
	info, err := Probe(ctx, e.Runner, e.FFprobe, path)
	if err != nil {
		return "", fmt.Errorf("probe: %w", err)
	}
	if !info.HasAudio() {
		return "", ErrNoAudioStream
	}
	return e.Audio.Extract(ctx, path)
}
