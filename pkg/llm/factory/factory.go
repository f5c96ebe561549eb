package factory

import (
	"fmt"

	"legal-letter-be/pkg/llm"
	"legal-letter-be/pkg/llm/ollama"
	"legal-letter-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai", "":
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		return openai.NewProvider(baseURL, apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
