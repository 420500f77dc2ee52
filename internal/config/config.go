// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds application configuration values loaded from file or environment variables.
// It is built once at startup and passed to the components that need it.
type Config struct {
	Port                     string        `mapstructure:"PORT"`
	Env                      string        `mapstructure:"APP_ENV"`
	Timezone                 string        `mapstructure:"APP_TIMEZONE"`
	JWTSecret                string        `mapstructure:"JWT_SECRET"`
	JWTTTL                   time.Duration `mapstructure:"JWT_TTL"`
	DatabaseURL              string        `mapstructure:"DATABASE_URL"`
	DBHost                   string        `mapstructure:"DB_HOST"`
	DBPort                   string        `mapstructure:"DB_PORT"`
	DBUser                   string        `mapstructure:"DB_USER"`
	DBPassword               string        `mapstructure:"DB_PASSWORD"`
	DBName                   string        `mapstructure:"DB_NAME"`
	DBSSLMode                string        `mapstructure:"DB_SSLMODE"`
	DBSchemaMode             string        `mapstructure:"DB_SCHEMA_MODE"`
	DBMaxOpenConns           int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns           int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetimeMinutes int           `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`
	RedisURL                 string        `mapstructure:"REDIS_URL"`
	AllowedOrigins           string        `mapstructure:"ALLOWED_ORIGINS"`
	TracingEnabled           bool          `mapstructure:"TRACING_ENABLED"`
	TracingExporter          string        `mapstructure:"TRACING_EXPORTER"`
	OTLPEndpoint             string        `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	TracingSampleRatio       float64       `mapstructure:"TRACING_SAMPLE_RATIO"`
}

// LoadConfig loads application configuration from .env, an optional config file and environment variables.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load("../.env"); err != nil {
		_ = godotenv.Load(".env")
	}

	v := viper.New()
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AutomaticEnv()

	// The config file may not exist.
	_ = v.ReadInConfig()

	setDefaults(v)

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	cfg.DBSSLMode = strings.ToLower(strings.TrimSpace(cfg.DBSSLMode))
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

var envKeys = []string{
	"PORT", "APP_ENV", "APP_TIMEZONE", "JWT_SECRET", "JWT_TTL", "DATABASE_URL",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_SCHEMA_MODE",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME_MINUTES",
	"REDIS_URL", "ALLOWED_ORIGINS", "TRACING_ENABLED", "TRACING_EXPORTER",
	"OTEL_EXPORTER_OTLP_ENDPOINT", "TRACING_SAMPLE_RATIO",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "health_tracker")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SCHEMA_MODE", "hybrid")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 5)
	v.SetDefault("REDIS_URL", "localhost:6379")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	v.SetDefault("TRACING_SAMPLE_RATIO", 1.0)
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
		if c.DatabaseURL == "" && (c.DBPassword == "password" || c.DBPassword == "") {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			log.Println("WARNING: DB_SSLMODE is 'disable' in production. It is highly recommended to use SSL for database connections.")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	} else if len(c.JWTSecret) < 32 {
		log.Println("WARNING: JWT_SECRET is shorter than 32 characters. Consider using a stronger secret for production.")
	}

	return nil
}

// IsProduction reports whether the app runs with a production profile.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Location resolves APP_TIMEZONE. "Local" and "" mean the server's zone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

// DSN returns the Postgres connection string. DATABASE_URL wins over the discrete DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		sslMode,
	)
}
