package llm

import (
	"context"
	"testing"
)

// MockProvider is a test provider that records calls and returns canned responses.
type MockProvider struct {
	Calls    []CompletionRequest
	Response *CompletionResponse
	Err      error
	ProvName string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		ProvName: name,
		Response: &CompletionResponse{
			Content:      "mock response",
			InputTokens:  10,
			OutputTokens: 20,
			Model:        "mock-model",
		},
	}
}

func (m *MockProvider) Name() string {
	return m.ProvName
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

// --- Tests ---

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider("test")

	req := CompletionRequest{
		Model:    "test-model",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}

	resp, err := mock.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "mock response" {
		t.Errorf("expected 'mock response', got %q", resp.Content)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Model != "test-model" {
		t.Errorf("expected model 'test-model', got %q", mock.Calls[0].Model)
	}
}

func TestFactoryRequiresAPIKey(t *testing.T) {
	for _, p := range []string{"google", "openai"} {
		_, err := NewProvider(p, "some-model", "")
		if err == nil {
			t.Errorf("expected error for provider %q with empty API key", p)
		}
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	_, err := NewProvider("bedrock", "some-model", "k")
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFactoryCreatesGoogleProvider(t *testing.T) {
	provider, err := NewProvider("google", "gemini-2.5-flash", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.Name() != "google" {
		t.Errorf("expected name 'google', got %q", provider.Name())
	}
}

func TestFactoryCreatesOpenAIProvider(t *testing.T) {
	provider, err := NewProvider("openai", "gpt-4o-mini", "test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("expected name 'openai', got %q", provider.Name())
	}
}

func TestFactoryCreatesOllamaWithoutAPIKey(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	provider, err := NewProvider("ollama", "llama3", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ollamaP, ok := provider.(*OllamaProvider)
	if !ok {
		t.Fatal("expected *OllamaProvider")
	}
	if ollamaP.baseURL != "http://localhost:11434" {
		t.Errorf("expected default host, got %q", ollamaP.baseURL)
	}
}

func TestFactoryOllamaHonorsHostEnv(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://ollama.local:11434")
	provider, err := NewProvider("ollama", "llama3", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ollamaP := provider.(*OllamaProvider)
	if ollamaP.baseURL != "http://ollama.local:11434" {
		t.Errorf("expected host from env, got %q", ollamaP.baseURL)
	}
}
