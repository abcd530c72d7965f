package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to a documented env var.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Backend API — the remote system that owns all domain state.
	BackendURL string `mapstructure:"BACKEND_API_URL"`

	// Redis (session store + job queue)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Sessions
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	// LoginDelayMS is how long the demo identity provider takes to resolve
	// the fixed profile, in milliseconds.
	LoginDelayMS int `mapstructure:"LOGIN_DELAY_MS"`

	// Typeahead debounce window for the quick-entry terminal, in milliseconds.
	DebounceMS int `mapstructure:"DEBOUNCE_MS"`

	// SMTP (receipt delivery)
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Business
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`
	NombreNegocio  string `mapstructure:"NOMBRE_NEGOCIO"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 3)
	viper.SetDefault("BACKEND_API_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_SECRET", "ventaslive-dev-secret")
	viper.SetDefault("SESSION_TTL_HOURS", 8)
	viper.SetDefault("LOGIN_DELAY_MS", 800)
	viper.SetDefault("DEBOUNCE_MS", 300)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/ventaslive/recibos")
	viper.SetDefault("NOMBRE_NEGOCIO", "VentasLive")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
