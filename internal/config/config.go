package config

import (
	"os"
	"strconv"
)

// Config holds everything the service reads from the environment. It is
// loaded once at startup and passed into the containers; nothing reads
// ambient environment state after that.
type Config struct {
	Port string

	// Provider selects the text-generation backend: "gemini", "openai"
	// or "mock".
	Provider string
	Model    string

	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Per-million-token prices in USD, used for the cost estimate. When
	// both are zero the pricing table is consulted by model id instead.
	InputPricePerMTok  float64
	OutputPricePerMTok float64

	// StaticDir, when set, is served at / (the bundled web frontend).
	StaticDir string

	// CredentialPresent records whether an API key for the selected
	// provider was configured. Computed once here so the error
	// classifier never re-reads the environment.
	CredentialPresent bool
}

func Load() *Config {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Provider:           getEnv("LLM_PROVIDER", "gemini"),
		Model:              getEnv("MODEL", "gemini-2.0-flash"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		InputPricePerMTok:  getEnvFloat("INPUT_PRICE_PER_MTOK", 0),
		OutputPricePerMTok: getEnvFloat("OUTPUT_PRICE_PER_MTOK", 0),
		StaticDir:          os.Getenv("STATIC_DIR"),
	}

	switch cfg.Provider {
	case "openai":
		cfg.CredentialPresent = cfg.OpenAIAPIKey != ""
	case "mock":
		cfg.CredentialPresent = true
	default:
		cfg.CredentialPresent = cfg.GeminiAPIKey != ""
	}

	return cfg
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
