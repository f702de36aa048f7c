package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/srinivassivaratri/namemate/internal/config"
)

// Sentinel errors returned by completers.
var (
	ErrNoChoices = errors.New("model returned no choices")
	ErrNoAPIKey  = errors.New("no API key configured")
)

// Completer sends one prompt to a model and returns the raw reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter returns the backend selected by cfg.Provider.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for provider %s", ErrNoAPIKey, cfg.Provider)
	}
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiCompleter(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAICompleter(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// --- OpenAI-compatible (Groq by default) ---

// OpenAICompleter uses the chat completions API of any OpenAI-compatible
// endpoint.
type OpenAICompleter struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAICompleter builds a client for cfg.BaseURL (library default when
// empty).
func NewOpenAICompleter(cfg config.LLMConfig) *OpenAICompleter {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   cfg.MaxTokens,
	}
}

// Complete implements [Completer].
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// --- Gemini ---

// GeminiCompleter uses the Gemini API through the genai SDK.
type GeminiCompleter struct {
	client *genai.Client
	model  string
	gen    *genai.GenerateContentConfig
}

// NewGeminiCompleter builds a Gemini API client.
func NewGeminiCompleter(ctx context.Context, cfg config.LLMConfig) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	temp := float32(cfg.Temperature)
	return &GeminiCompleter{
		client: client,
		model:  cfg.Model,
		gen: &genai.GenerateContentConfig{
			Temperature:     &temp,
			MaxOutputTokens: int32(cfg.MaxTokens),
		},
	}, nil
}

// Complete implements [Completer].
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.gen)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoChoices
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
