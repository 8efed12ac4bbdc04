package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Session   SessionConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	MockAPI   MockAPIConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// UpstreamConfig locates the black-box CRUD backend the gateways consume
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// MockAPIConfig configures the mock CRUD backend binary
type MockAPIConfig struct {
	Port     string
	Driver   string // "sqlite" or "postgres"
	SQLite   string // sqlite file path, ":memory:" for ephemeral
	Host     string
	DBPort   string
	Name     string
	User     string
	Password string
	SSLMode  string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "crm-console")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:3001")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("SESSION_CLEANUP_MINUTES", 10)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("MOCKAPI_PORT", "3001")
	viper.SetDefault("MOCKAPI_DB_DRIVER", "sqlite")
	viper.SetDefault("MOCKAPI_SQLITE_PATH", "./mockapi.db")
	viper.SetDefault("MOCKAPI_DB_HOST", "localhost")
	viper.SetDefault("MOCKAPI_DB_PORT", "5432")
	viper.SetDefault("MOCKAPI_DB_NAME", "pilotapp")
	viper.SetDefault("MOCKAPI_DB_USER", "postgres")
	viper.SetDefault("MOCKAPI_DB_PASSWORD", "postgres")
	viper.SetDefault("MOCKAPI_DB_SSL_MODE", "disable")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			TTL:             time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute,
			CleanupInterval: time.Duration(viper.GetInt("SESSION_CLEANUP_MINUTES")) * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		MockAPI: MockAPIConfig{
			Port:     viper.GetString("MOCKAPI_PORT"),
			Driver:   viper.GetString("MOCKAPI_DB_DRIVER"),
			SQLite:   viper.GetString("MOCKAPI_SQLITE_PATH"),
			Host:     viper.GetString("MOCKAPI_DB_HOST"),
			DBPort:   viper.GetString("MOCKAPI_DB_PORT"),
			Name:     viper.GetString("MOCKAPI_DB_NAME"),
			User:     viper.GetString("MOCKAPI_DB_USER"),
			Password: viper.GetString("MOCKAPI_DB_PASSWORD"),
			SSLMode:  viper.GetString("MOCKAPI_DB_SSL_MODE"),
		},
	}
}

// DSN builds the postgres connection string for the mock backend
func (c *MockAPIConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.DBPort +
		" sslmode=" + c.SSLMode
}
