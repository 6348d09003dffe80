// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ai-intro-scoring-service/internal/service/rubric"
)

// Configuration holds all tunables for the service.
type Configuration struct {
	Service       ServiceConfig
	Analysis      AnalysisConfig
	Engines       EngineConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// ServiceConfig holds HTTP serving settings.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	MetricsPort string
	CORSOrigins []string
}

// AnalysisConfig holds transcript boundary settings.
type AnalysisConfig struct {
	DefaultDurationSec  float64
	MaxTranscriptLength int
}

// EngineConfig holds external NLP engine settings.
type EngineConfig struct {
	GrammarURL      string
	GrammarLanguage string
	GrammarTimeout  time.Duration
	EmbedURL        string
	EmbedModel      string
	EmbedTimeout    time.Duration
}

// KafkaConfig holds result-event publishing settings.
type KafkaConfig struct {
	Enabled   bool
	Brokers   []string
	Topic     string
	Principal string
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file in the working directory is honored when present.
func Load() *Configuration {
	_ = godotenv.Load()

	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-intro-scoring")

	return &Configuration{
		Service: ServiceConfig{
			Principal:   principal,
			HTTPPort:    envOrDefault("API_PORT", "5000"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
			CORSOrigins: envOrDefaultList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:8000"}),
		},
		Analysis: AnalysisConfig{
			DefaultDurationSec:  envOrDefaultFloat("DEFAULT_DURATION_SEC", 52),
			MaxTranscriptLength: envOrDefaultInt("MAX_TRANSCRIPT_LENGTH", 5000),
		},
		Engines: EngineConfig{
			GrammarURL:      envOrDefault("LANGUAGE_TOOL_URL", "https://api.languagetool.org"),
			GrammarLanguage: envOrDefault("LANGUAGE_TOOL_LANG", "en-US"),
			GrammarTimeout:  envOrDefaultDuration("LANGUAGE_TOOL_TIMEOUT", 10*time.Second),
			EmbedURL:        envOrDefault("EMBED_URL", ""),
			EmbedModel:      envOrDefault("SENTENCE_MODEL", "all-MiniLM-L6-v2"),
			EmbedTimeout:    envOrDefaultDuration("EMBED_TIMEOUT", 10*time.Second),
		},
		Kafka: KafkaConfig{
			Enabled:   envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:   envOrDefaultList("KAFKA_BROKERS", nil),
			Topic:     envOrDefault("KAFKA_TOPIC_ANALYSIS", "intro.analysis.completed"),
			Principal: envOrDefault("KAFKA_PRINCIPAL", principal),
		},
		Observability: ObservabilityConfig{
			LogLevel:  envOrDefault("LOG_LEVEL", "info"),
			LogFormat: envOrDefault("LOG_FORMAT", "json"),
		},
	}
}

// Rubric builds the rubric configuration from the loaded settings.
// Scoring tunables keep their documented defaults; only the values the
// environment can override are threaded through here.
func (c *Configuration) Rubric() rubric.Config {
	rc := rubric.DefaultConfig()
	rc.DefaultDurationSec = c.Analysis.DefaultDurationSec
	return rc
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
