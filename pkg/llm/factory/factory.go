package factory

import (
	"fmt"
	"time"

	"zeus-ai-be/pkg/llm"
	"zeus-ai-be/pkg/llm/anthropic"
	"zeus-ai-be/pkg/llm/ollama"
)

// ErrMissingCredential is the one pipeline error that surfaces as an HTTP
// failure: without a provider credential there is nothing to degrade to.
var ErrMissingCredential = fmt.Errorf("llm provider credential not configured")

func NewLLMProvider(providerType, modelName, apiKey, baseURL string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "anthropic":
		if apiKey == "" {
			return nil, ErrMissingCredential
		}
		return anthropic.NewAnthropicProvider(apiKey, modelName, timeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
