package title

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/parselmouth/parselmouth/internal/llm"
)

// fakeProvider returns a canned reply and records the last request.
type fakeProvider struct {
	reply string
	err   error
	last  llm.CompletionRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.reply, Model: req.Model}, nil
}

func TestSuggestParsesTrailingDate(t *testing.T) {
	fake := &fakeProvider{reply: "invoice_1023 2023-10-27\n"}
	r := NewRequester(fake, "gemini-2.5-flash")

	sug, err := r.Suggest(context.Background(), "some invoice text", true, "_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sug.Title != "invoice_1023" {
		t.Errorf("title: got %q, want invoice_1023", sug.Title)
	}
	want := time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC)
	if !sug.Date.Equal(want) {
		t.Errorf("date: got %v, want %v", sug.Date, want)
	}
	if fake.last.Model != "gemini-2.5-flash" {
		t.Errorf("request model: got %q", fake.last.Model)
	}
}

func TestSuggestHandlesNoDateMarker(t *testing.T) {
	fake := &fakeProvider{reply: "quarterly_report_NODATE"}
	r := NewRequester(fake, "m")

	sug, err := r.Suggest(context.Background(), "text", true, "_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sug.Title != "quarterly_report" {
		t.Errorf("title: got %q, want quarterly_report", sug.Title)
	}
	if !sug.Date.IsZero() {
		t.Errorf("expected zero date, got %v", sug.Date)
	}
}

func TestSuggestIgnoresDateWhenNotRequested(t *testing.T) {
	fake := &fakeProvider{reply: "report 2023-10-27"}
	r := NewRequester(fake, "m")

	sug, err := r.Suggest(context.Background(), "text", false, "_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sug.Title != "report 2023-10-27" {
		t.Errorf("title: got %q", sug.Title)
	}
	if !sug.Date.IsZero() {
		t.Error("expected no date extraction when includeDate is false")
	}
}

func TestSuggestUnwrapsFencesAndQuotes(t *testing.T) {
	fake := &fakeProvider{reply: "```\n\"meeting_notes\"\n```"}
	r := NewRequester(fake, "m")

	sug, err := r.Suggest(context.Background(), "text", false, "_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sug.Title != "meeting_notes" {
		t.Errorf("title: got %q, want meeting_notes", sug.Title)
	}
}

func TestSuggestWrapsProviderError(t *testing.T) {
	cause := errors.New("boom")
	fake := &fakeProvider{err: cause}
	r := NewRequester(fake, "m")

	_, err := r.Suggest(context.Background(), "text", true, "_")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestSuggestCapsPromptContent(t *testing.T) {
	fake := &fakeProvider{reply: "t"}
	r := NewRequester(fake, "m")

	long := strings.Repeat("x", maxPromptChars*2)
	if _, err := r.Suggest(context.Background(), long, false, "_"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prompt := fake.last.Messages[0].Content
	if len(prompt) > maxPromptChars+500 {
		t.Errorf("prompt not capped: %d chars", len(prompt))
	}
	if !strings.Contains(prompt, "Return ONLY the title") {
		t.Error("prompt missing instruction")
	}
}

func TestBuildPromptMentionsSeparatorAndDateRules(t *testing.T) {
	p := buildPrompt("content", true, "-")
	if !strings.Contains(p, `"-"`) {
		t.Errorf("prompt does not name the separator: %q", p)
	}
	if !strings.Contains(p, "NODATE") {
		t.Error("prompt missing NODATE marker instruction")
	}

	p = buildPrompt("content", false, "_")
	if strings.Contains(p, "NODATE") {
		t.Error("date instruction present with includeDate=false")
	}
}
