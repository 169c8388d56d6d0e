package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Booking backend (owns bookings, quotas and users; we only read snapshots).
	BackendAPIURL       string `mapstructure:"BACKEND_API_URL"`
	BackendAPITimeoutMS int    `mapstructure:"BACKEND_API_TIMEOUT_MS"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisPaymentDB int    `mapstructure:"REDIS_PAYMENT_DB"`

	// Stripe secret key for payment intents.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// TTL for cached backend snapshots, in seconds.
	SnapshotCacheTTL int `mapstructure:"SNAPSHOT_CACHE_TTL_SECONDS"`

	// TTL for local payment-attempt state, in seconds. An attempt that outlives
	// this is treated the same as the user having navigated away.
	PaymentAttemptTTL int `mapstructure:"PAYMENT_ATTEMPT_TTL_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_API_URL", "http://localhost:5000/api")
	viper.SetDefault("BACKEND_API_TIMEOUT_MS", 5000)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_PAYMENT_DB", 1)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("SNAPSHOT_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("PAYMENT_ATTEMPT_TTL_SECONDS", 1800)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
