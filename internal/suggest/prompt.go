package suggest

import (
	"fmt"
	"strings"

	"github.com/tyler-sommer/stick"
)

// DefaultPromptTemplate is the Twig template used when none is configured.
// Variables: content, language, abbreviations, max_length.
const DefaultPromptTemplate = `Generate a single-word filename that best describes this file content.

Content: "{{ content }}"
{% if language %}
The content appears to be written in {{ language }}. Answer with an English word.
{% endif %}
Rules:
1. Return ONLY ONE WORD (no underscores)
2. Maximum {{ max_length }} characters
3. Must be descriptive and meaningful
4. Use common abbreviations if needed:
{% for a in abbreviations %}   - {{ a }}
{% endfor %}
Examples based on content:
- Terminal showing ports -> "ports"
- User authentication error -> "authfail"
- Network configuration -> "netconfig"
- Database backup screen -> "dbbackup"
- System logs -> "syslog"
- API documentation -> "apidocs"
- Git merge conflict -> "gitmerge"
- Docker settings -> "docker"
- User interface -> "interface"
- Build process -> "build"

Return ONLY the filename (without extension), nothing else.`

// PromptBuilder renders the naming prompt.
type PromptBuilder struct {
	env           *stick.Env
	tpl           string
	abbreviations []string
	maxLength     int
}

// NewPromptBuilder returns a builder for tpl (DefaultPromptTemplate when
// empty).
func NewPromptBuilder(tpl string, abbreviations []string, maxLength int) *PromptBuilder {
	if strings.TrimSpace(tpl) == "" {
		tpl = DefaultPromptTemplate
	}
	return &PromptBuilder{
		env:           stick.New(nil),
		tpl:           tpl,
		abbreviations: abbreviations,
		maxLength:     maxLength,
	}
}

// Build renders the prompt for content. language may be empty.
func (b *PromptBuilder) Build(content, language string) (string, error) {
	ctx := map[string]stick.Value{
		"content":       content,
		"language":      language,
		"abbreviations": b.abbreviations,
		"max_length":    b.maxLength,
	}
	var out strings.Builder
	if err := b.env.Execute(b.tpl, &out, ctx); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return out.String(), nil
}
