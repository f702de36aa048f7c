package extract

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// WhisperTranscriber calls an OpenAI-compatible transcription endpoint.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber returns a transcriber for apiKey. An empty baseURL
// keeps the library default.
func NewWhisperTranscriber(apiKey, baseURL, model string) *WhisperTranscriber {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperTranscriber{client: openai.NewClientWithConfig(cfg), model: model}
}

// Transcribe implements [Transcriber].
func (t *WhisperTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return resp.Text, nil
}
