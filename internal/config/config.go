// Package config loads service configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// SwaggerConfig overrides the generated swagger host/schemes at runtime
type SwaggerConfig struct {
	Host    string
	Schemes []string
}

// Config holds everything the server needs to start
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	// GithubToken is optional; unauthenticated requests work but are
	// rate-limited much harder by the GitHub API.
	GithubToken string

	// CacheDir is where rendered card PNGs are written.
	CacheDir string

	// DefaultLangs seeds a card's distribution when GitHub reports no
	// languages. Format: "Go:40,TypeScript:30,HTML:20,CSS:10".
	DefaultLangs string

	Swagger SwaggerConfig
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// missing .env is fine; real deployments set env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GithubToken:  os.Getenv("GITHUB_TOKEN"),
		CacheDir:     getEnv("CACHE_DIR", "cache"),
		DefaultLangs: os.Getenv("CARD_DEFAULT_LANGS"),
	}

	cfg.Swagger.Host = os.Getenv("SWAGGER_HOST")
	if schemes := os.Getenv("SWAGGER_SCHEMES"); schemes != "" {
		for _, s := range strings.Split(schemes, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Swagger.Schemes = append(cfg.Swagger.Schemes, s)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
