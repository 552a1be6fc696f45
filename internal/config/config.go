package config

import "os"

type Config struct {
	APIAddr      string
	DataDir      string
	LLMProviders string

	AzureEndpoint   string
	AzureAPIKey     string
	AzureAPIVersion string
	AzureModel      string

	OpenAIKey   string
	OpenAIModel string

	LocalBaseURL string
	LocalModel   string
}

func Load() Config {
	return Config{
		APIAddr:      getenv("SARA_API_ADDR", ":8080"),
		DataDir:      getenv("SARA_DATA_DIR", "./data/researchers"),
		LLMProviders: getenv("SARA_LLM_PROVIDERS", "azure"),

		AzureEndpoint:   getenv("AZURE_API_ENDPOINT", ""),
		AzureAPIKey:     getenv("AZURE_API_KEY", ""),
		AzureAPIVersion: getenv("AZURE_API_VERSION", "2024-12-01-preview"),
		AzureModel:      getenv("SARA_AZURE_MODEL", "gpt-4o"),

		OpenAIKey:   getenv("OPENAI_API_KEY", ""),
		OpenAIModel: getenv("SARA_OPENAI_MODEL", "gpt-4o"),

		LocalBaseURL: getenv("SARA_LOCAL_BASE_URL", "http://localhost:11434/v1"),
		LocalModel:   getenv("SARA_LOCAL_MODEL", "llama3"),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}
