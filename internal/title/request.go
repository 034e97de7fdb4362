package title

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/parselmouth/parselmouth/internal/llm"
)

// maxPromptChars caps how much document content is sent to the model.
const maxPromptChars = 10000

// Suggestion is the parsed result of a title request: the raw title text
// (still untrusted, pre-formatting) and the document date the model found,
// zero when it reported none.
type Suggestion struct {
	Title string
	Date  time.Time
}

// Requester asks an LLM provider for a title suggestion.
type Requester struct {
	provider llm.Provider
	model    string
}

// NewRequester creates a Requester bound to a provider and model.
func NewRequester(provider llm.Provider, model string) *Requester {
	return &Requester{provider: provider, model: model}
}

// Suggest sends the document content to the model and parses the reply.
// One request, one response; there is no retry.
func (r *Requester) Suggest(ctx context.Context, content string, includeDate bool, separator string) (*Suggestion, error) {
	prompt := buildPrompt(content, includeDate, separator)

	resp, err := r.provider.Complete(ctx, llm.CompletionRequest{
		Model:       r.model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   256,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("requesting title from %s: %w", r.provider.Name(), err)
	}

	return parseSuggestion(resp.Content, includeDate), nil
}

// buildPrompt asks for a separator-joined lowercase title and, when dates
// matter, a trailing ISO date or the literal NODATE marker. The date is
// always requested in ISO form; rendering to the configured date format
// happens locally.
func buildPrompt(content string, includeDate bool, separator string) string {
	parts := []string{
		"Analyze the following document content and provide a meaningful, concise title for it.",
		fmt.Sprintf("The title MUST be in lowercase using %q as a separator.", separator),
	}
	if includeDate {
		parts = append(parts,
			"If the document contains a specific relevant date (like an invoice date, meeting date, etc.), "+
				"include it at the END of the title in YYYY-MM-DD format. "+
				"If no date is found, end the title with 'NODATE' as a marker.")
	}
	parts = append(parts, "Return ONLY the title, nothing else.\n")

	if len(content) > maxPromptChars {
		content = content[:maxPromptChars]
	}
	parts = append(parts, content)

	return strings.Join(parts, " ")
}

// parseSuggestion normalizes a model reply: unwrap fences and quotes, keep
// the first non-empty line, pop the trailing date or NODATE marker.
func parseSuggestion(raw string, includeDate bool) *Suggestion {
	s := strings.TrimSpace(raw)

	// Models occasionally wrap the answer in a code fence despite the prompt.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if idx := strings.Index(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			s = line
			break
		}
	}
	s = strings.Trim(s, "\"'`")

	sug := &Suggestion{}
	if includeDate {
		if trimmed, ok := trimNoDateMarker(s); ok {
			s = trimmed
		} else if rest, d, ok := popTrailingDate(s); ok {
			s = rest
			sug.Date = d
		}
	}
	sug.Title = strings.TrimSpace(s)
	return sug
}

// trimNoDateMarker removes a trailing NODATE marker, case-insensitively,
// along with any separator punctuation before it.
func trimNoDateMarker(s string) (string, bool) {
	lower := strings.ToLower(s)
	if !strings.HasSuffix(lower, "nodate") {
		return s, false
	}
	s = s[:len(s)-len("nodate")]
	return strings.TrimRight(s, " \t_-."), true
}
