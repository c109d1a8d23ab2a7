package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"facereg/internal/platform/tracing"
	"facereg/internal/registry/models"
	dErrors "facereg/pkg/domain-errors"
	pstrings "facereg/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr string
	// Versions lists the template versions served, in coordinator order.
	Versions []string
	// EmbeddingDimension pins the embedding length; 0 accepts any length.
	EmbeddingDimension     int
	Registry               models.Config
	SkipCompatibilityCheck bool
	KafkaBrokers           []string
	KafkaTopic             string
	LogLevel               slog.Level
	Tracing                tracing.Config
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Unset variables take defaults; malformed ones are reported.
func FromEnv() (Server, error) {
	defaults := models.DefaultConfig()
	cfg := Server{
		Addr:       envOr("FACEREG_ADDR", ":8080"),
		Versions:   pstrings.SplitAndTrim(envOr("FACEREG_VERSIONS", "v1"), ","),
		KafkaTopic: envOr("FACEREG_KAFKA_TOPIC", "facereg.templates-added"),
		Registry:   defaults,
		Tracing:    tracing.DefaultConfig(),
	}
	cfg.Tracing.Exporter = envOr("FACEREG_TRACE_EXPORTER", cfg.Tracing.Exporter)
	cfg.Tracing.OTLPEndpoint = envOr("FACEREG_OTLP_ENDPOINT", cfg.Tracing.OTLPEndpoint)
	cfg.KafkaBrokers = pstrings.DedupeAndTrim(pstrings.SplitAndTrim(os.Getenv("FACEREG_KAFKA_BROKERS"), ","))

	var err error
	if cfg.Registry.AuthenticationThreshold, err = envFloat("FACEREG_AUTH_THRESHOLD", defaults.AuthenticationThreshold); err != nil {
		return Server{}, err
	}
	if cfg.Registry.IdentificationThreshold, err = envFloat("FACEREG_IDENTIFY_THRESHOLD", defaults.IdentificationThreshold); err != nil {
		return Server{}, err
	}
	if cfg.Registry.AutoEnrolmentThreshold, err = envFloat("FACEREG_AUTO_ENROL_THRESHOLD", defaults.AutoEnrolmentThreshold); err != nil {
		return Server{}, err
	}
	if cfg.Tracing.SampleRate, err = envFloat("FACEREG_TRACE_SAMPLE_RATE", cfg.Tracing.SampleRate); err != nil {
		return Server{}, err
	}
	if cfg.Registry.VerifyExistingIdentity, err = envBool("FACEREG_VERIFY_EXISTING", false); err != nil {
		return Server{}, err
	}
	if cfg.SkipCompatibilityCheck, err = envBool("FACEREG_SKIP_COMPAT_CHECK", false); err != nil {
		return Server{}, err
	}
	if raw := os.Getenv("FACEREG_EMBEDDING_DIM"); raw != "" {
		if cfg.EmbeddingDimension, err = strconv.Atoi(raw); err != nil {
			return Server{}, invalid("FACEREG_EMBEDDING_DIM", raw)
		}
	}
	if raw := os.Getenv("FACEREG_LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Server{}, invalid("FACEREG_LOG_LEVEL", raw)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks values FromEnv cannot check one variable at a time.
func (s Server) Validate() error {
	if s.Addr == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "listen address is required")
	}
	if len(s.Versions) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "at least one template version is required")
	}
	seen := make(map[string]struct{}, len(s.Versions))
	for _, v := range s.Versions {
		if _, ok := seen[v]; ok {
			return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("template version %q listed twice", v))
		}
		seen[v] = struct{}{}
	}
	if s.EmbeddingDimension < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "embedding dimension must not be negative")
	}
	switch s.Tracing.Exporter {
	case "none", "stdout", "otlp":
	default:
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported trace exporter %q", s.Tracing.Exporter))
	}
	if len(s.KafkaBrokers) > 0 && s.KafkaTopic == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "kafka topic is required when brokers are set")
	}
	return s.Registry.Validate()
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalid(key, raw)
	}
	return v, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalid(key, raw)
	}
	return v, nil
}

func invalid(key, raw string) error {
	return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%s: invalid value %q", key, raw))
}
