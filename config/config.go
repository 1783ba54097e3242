package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	BaseURL         string
	Port            string
	Env             string
	UpstreamURL     string
	UpstreamTimeout time.Duration
	RefreshCron     string
}

// New sets up all config related services. A local .env file is loaded
// first so development overrides work without exporting anything.
func New() *Config {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	//setup zap logger and replace default logger
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	timeout := 10 * time.Second
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		BaseURL:         os.Getenv("BASE_URL"),
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		UpstreamURL:     getEnv("UPSTREAM_URL", "https://jsonplaceholder.typicode.com"),
		UpstreamTimeout: timeout,
		RefreshCron:     getEnv("REFRESH_CRON", "@every 5m"),
	}
}

// setLogger picks the zap flavor for the given environment name
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
