// Package suggest asks a language model for a one-word filename describing
// extracted file content.
//
// Pieces:
//   - Completer: one prompt in, raw text out; OpenAI-compatible and Gemini
//     backends (completer.go)
//   - PromptBuilder: Twig prompt template (prompt.go)
//   - LanguageHint: content language detection for the prompt (language.go)
//   - RetryState: transient-error classification and backoff (retry.go)
//   - LLMSuggester: throttling, retries and post-processing (suggester.go)
package suggest
