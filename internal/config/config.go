package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type settings struct {
	ServerPort     int           `env:"SERVER_PORT"`
	LLMProvider    string        `env:"LLM_PROVIDER"`
	LLMModel       string        `env:"LLM_MODEL"`
	LLMBaseURL     string        `env:"LLM_BASE_URL"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	MockDelay      time.Duration `env:"MOCK_DELAY"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST"`
	LogLevel       string        `env:"LOG_LEVEL"`
	APIToken       string        `env:"API_TOKEN"`
}

var (
	mu      sync.RWMutex
	current settings
)

// Load reads the .env file specified by MINDSHIFT_ENV (or .env by default),
// then loads the corresponding .secret file if it exists, and parses the
// environment. Values that are present but malformed are reported.
func Load() error {
	envFile := os.Getenv("MINDSHIFT_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	var s settings
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	mu.Lock()
	current = s
	mu.Unlock()
	return nil
}

func get() settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func ServerPort() int {
	if p := get().ServerPort; p > 0 {
		return p
	}
	return 8080
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// LLMProvider returns the configured LLM provider.
// Defaults to "gemini" if not set.
// Valid values: gemini, openai, mock
func LLMProvider() string {
	p := strings.ToLower(strings.TrimSpace(get().LLMProvider))
	if p == "" {
		return "gemini"
	}
	return p
}

// LLMModel returns the model override. Empty means the provider default.
func LLMModel() string {
	return get().LLMModel
}

// LLMBaseURL returns the provider endpoint override, if any.
func LLMBaseURL() string {
	return get().LLMBaseURL
}

func GeminiAPIKey() string {
	return get().GeminiAPIKey
}

func OpenAIAPIKey() string {
	return get().OpenAIAPIKey
}

// LLMAPIKey returns the API key for the configured LLM provider.
// An empty key puts the app in degraded mode.
func LLMAPIKey() string {
	switch LLMProvider() {
	case "openai":
		return OpenAIAPIKey()
	case "mock":
		return ""
	default:
		return GeminiAPIKey()
	}
}

// MockDelay returns the artificial delay of degraded mode.
// Defaults to 1.5s if not set.
func MockDelay() time.Duration {
	if d := get().MockDelay; d > 0 {
		return d
	}
	return 1500 * time.Millisecond
}

// SessionTTL returns how long an idle browser session is kept.
// Defaults to 30m if not set.
func SessionTTL() time.Duration {
	if d := get().SessionTTL; d > 0 {
		return d
	}
	return 30 * time.Minute
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	if rps := get().RateLimitRPS; rps > 0 {
		return rps
	}
	return 100
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	if burst := get().RateLimitBurst; burst > 0 {
		return burst
	}
	return 20
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	if level := get().LogLevel; level != "" {
		return level
	}
	return "info"
}

// APIToken returns the bearer token required on the JSON API. Empty disables auth.
func APIToken() string {
	return get().APIToken
}
