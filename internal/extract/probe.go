package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// MediaStream is one stream of an ffprobe result.
type MediaStream struct {
	Index         int
	Type          string // "audio", "video", "subtitle", ...
	Codec         string
	Language      string
	IsAttachedPic bool
}

// MediaInfo is the parsed output of a single ffprobe JSON call.
type MediaInfo struct {
	FormatName string
	Duration   float64
	Streams    []MediaStream
}

// HasAudio reports whether the container carries at least one audio stream.
func (m *MediaInfo) HasAudio() bool {
	for _, s := range m.Streams {
		if s.Type == "audio" {
			return true
		}
	}
	return false
}

// Probe runs ffprobe against path and parses the result.
func Probe(ctx context.Context, runner CommandRunner, ffprobe, path string) (*MediaInfo, error) {
	out, err := runner.Run(ctx, ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	if err != nil {
		return nil, err
	}
	return ParseProbeJSON(out)
}

// ParseProbeJSON converts raw ffprobe JSON output into a MediaInfo.
func ParseProbeJSON(data []byte) (*MediaInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	info := &MediaInfo{FormatName: raw.Format.FormatName}
	if d, err := strconv.ParseFloat(raw.Format.Duration, 64); err == nil {
		info.Duration = d
	}
	for _, s := range raw.Streams {
		info.Streams = append(info.Streams, MediaStream{
			Index:         s.Index,
			Type:          s.CodecType,
			Codec:         s.CodecName,
			Language:      s.Tags["language"],
			IsAttachedPic: s.Disposition["attached_pic"] == 1,
		})
	}
	return info, nil
}

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

type ffprobeStream struct {
	Index       int               `json:"index"`
	CodecName   string            `json:"codec_name"`
	CodecType   string            `json:"codec_type"`
	Disposition map[string]int    `json:"disposition"`
	Tags        map[string]string `json:"tags"`
}
