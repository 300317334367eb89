package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisTasksDB  int    `mapstructure:"REDIS_TASKS_DB"`

	// Checkout pipeline settings.
	SessionTTLMinutes  int     `mapstructure:"SESSION_TTL_MINUTES"`
	SettleDelaySeconds int     `mapstructure:"CONFIRMATION_SETTLE_SECONDS"`
	TaxRate            float64 `mapstructure:"TAX_RATE"`
	DefaultCountryCode string  `mapstructure:"DEFAULT_COUNTRY_CODE"`
	WorkerConcurrency  int     `mapstructure:"WORKER_CONCURRENCY"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_TASKS_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "wanderbook")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("CONFIRMATION_SETTLE_SECONDS", 3)
	viper.SetDefault("TAX_RATE", 0.10)
	viper.SetDefault("DEFAULT_COUNTRY_CODE", "US")
	viper.SetDefault("WORKER_CONCURRENCY", 5)

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

// SessionTTL returns how long an in-flight checkout session is kept in cache.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}

// SettleDelay returns the delay before a processing confirmation flips to confirmed.
func SettleDelay() time.Duration {
	return time.Duration(AppConfig.SettleDelaySeconds) * time.Second
}
