package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogBackendMemory   = "memory"
	CatalogBackendPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type CatalogConfig struct {
	Backend string
	Seed    bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutSeconds, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, errors.New("invalid request timeout")
	}

	seed, err := strconv.ParseBool(getEnv("CATALOG_SEED", "true"))
	if err != nil {
		return nil, errors.New("invalid catalog seed flag")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Xmas Gift AI API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		Catalog: CatalogConfig{
			Backend: strings.ToLower(getEnv("CATALOG_BACKEND", CatalogBackendMemory)),
			Seed:    seed,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "xmas_gift"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	switch cfg.Catalog.Backend {
	case CatalogBackendMemory:
	case CatalogBackendPostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}

	return cfg, nil
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
