package llm

import (
	"fmt"
	"os"
)

// NewProvider creates an LLM provider for the given provider type and model.
// The apiKey comes from the resolved configuration (flag > env > file); the
// factory never reads key material itself. Ollama needs no key and takes its
// host from OLLAMA_HOST.
func NewProvider(providerType string, model string, apiKey string) (Provider, error) {
	switch providerType {
	case "google":
		if apiKey == "" {
			return nil, fmt.Errorf("google provider requires an API key")
		}
		return NewGoogleProvider(apiKey, model), nil

	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return NewOpenAIProvider(apiKey, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
