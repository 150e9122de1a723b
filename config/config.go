// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Provider names accepted by DOCQA_PROVIDER.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Extractor names accepted by DOCQA_EXTRACTOR.
const (
	ExtractorParagraphs  = "paragraphs"
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
	ExtractorMarkdown    = "markdown"
)

// Fetcher names accepted by DOCQA_FETCHER.
const (
	FetcherHTTP    = "http"
	FetcherBrowser = "browser"
)

// Config holds runtime configuration.
type Config struct {
	// Answer backend
	Provider        string        `env:"DOCQA_PROVIDER" envDefault:"gemini"`
	Model           string        `env:"DOCQA_MODEL"` // empty selects the provider's default
	AnswerTimeout   time.Duration `env:"DOCQA_ANSWER_TIMEOUT" envDefault:"60s"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY"`
	GoogleAPIKey    string        `env:"GOOGLE_API_KEY"` // fallback for GeminiAPIKey
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`

	// Extraction
	Extractor    string        `env:"DOCQA_EXTRACTOR" envDefault:"paragraphs"`
	Fetcher      string        `env:"DOCQA_FETCHER" envDefault:"http"`
	FetchTimeout time.Duration `env:"DOCQA_FETCH_TIMEOUT" envDefault:"10s"`
	MaxPageSize  int64         `env:"DOCQA_MAX_PAGE_SIZE" envDefault:"10485760"` // 10MB in bytes
	Concurrency  int           `env:"DOCQA_CONCURRENCY" envDefault:"3"`

	// Logging
	LogLevel  string `env:"DOCQA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DOCQA_LOG_FORMAT" envDefault:"text"`

	// Server
	Addr          string `env:"DOCQA_ADDR" envDefault:":8080"`
	MaxUploadSize int64  `env:"DOCQA_MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes
}

// APIKey returns the configured key for the named provider.
func (c Config) APIKey(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		if c.GeminiAPIKey != "" {
			return c.GeminiAPIKey
		}
		return c.GoogleAPIKey
	}
}

// Load reads configuration from environment variables with defaults.
// Variables from the given dotenv files are loaded first without
// overriding the real environment; with no files, an optional ".env" in
// the working directory is used. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
