package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Calculation CalculationConfig
	Report      ReportConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	RateLimitPerSec  int
	RateLimitBurst   int
}

// CalculationConfig caps the accepted input ranges so a malformed request
// cannot drive the schedule loop into absurd term lengths or amounts
type CalculationConfig struct {
	MaxPrincipal  float64
	MaxTermMonths int
	MaxRate       float64
}

type ReportConfig struct {
	PageSize        int
	DefaultLanguage string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8080"),
			Host:             getEnv("SERVER_HOST", "localhost"),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			CORSAllowOrigins: getSliceEnv("CORS_ALLOW_ORIGINS", []string{"*"}),
			RateLimitPerSec:  getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:   getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Calculation: CalculationConfig{
			MaxPrincipal:  getFloatEnv("CALC_MAX_PRINCIPAL", 1_000_000_000),
			MaxTermMonths: getIntEnv("CALC_MAX_TERM_MONTHS", 600),
			MaxRate:       getFloatEnv("CALC_MAX_RATE_PERCENT", 100),
		},
		Report: ReportConfig{
			PageSize:        getIntEnv("REPORT_PAGE_SIZE", 15),
			DefaultLanguage: getEnv("REPORT_DEFAULT_LANGUAGE", "en"),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
