package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Store drivers understood by STORE_DRIVER.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig
	Store     StoreConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Logger    LoggerConfig
}

// AppConfig holds configuration for the application server
type AppConfig struct {
	HTTPPort               string `mapstructure:"HTTP_PORT"`
	ShutdownTimeoutSeconds int    `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// StoreConfig selects the entity store. Every driver keeps its data in
// process memory only.
type StoreConfig struct {
	Driver    string `mapstructure:"STORE_DRIVER"`
	SQLiteDSN string `mapstructure:"SQLITE_DSN"`
}

// RedisConfig holds configuration for the Redis connection used by the rate
// limiter and the entity cache
type RedisConfig struct {
	Host        string `mapstructure:"REDIS_HOST"`
	Port        string `mapstructure:"REDIS_PORT"`
	Password    string `mapstructure:"REDIS_PASSWORD"`
	DB          int    `mapstructure:"REDIS_DB"`
	MaxRetries  int    `mapstructure:"REDIS_MAX_RETRIES"`
	PoolSize    int    `mapstructure:"REDIS_POOL_SIZE"`
	MinIdleConn int    `mapstructure:"REDIS_MIN_IDLE_CONN"`
}

// RateLimitConfig holds configuration for the HTTP rate limiter
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RequestsPerSecond float64 `mapstructure:"RATE_LIMIT_RPS"`
	BurstCapacity     int     `mapstructure:"RATE_LIMIT_BURST"`
}

// CacheConfig holds configuration for the Redis cache of entity lookups by id
type CacheConfig struct {
	Enabled    bool `mapstructure:"CACHE_ENABLED"`
	TTLSeconds int  `mapstructure:"CACHE_TTL_SECONDS"`
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string  `mapstructure:"LOG_LEVEL"`
	Format           string  `mapstructure:"LOG_FORMAT"`
	OutputPath       string  `mapstructure:"LOG_OUTPUT_PATH"`
	SlowQuerySeconds float64 `mapstructure:"LOG_SLOW_QUERY_SECONDS"`
	EnableSampling   bool    `mapstructure:"LOG_ENABLE_SAMPLING"`
	ServiceName      string  `mapstructure:"SERVICE_NAME"`
	ServiceVersion   string  `mapstructure:"SERVICE_VERSION"`
}

// LoadConfig reads configuration from path/app.env and the environment.
// Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app") // Look for app.env
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.App.HTTPPort = v.GetString("HTTP_PORT")
	config.App.ShutdownTimeoutSeconds = v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Store.Driver = v.GetString("STORE_DRIVER")
	config.Store.SQLiteDSN = v.GetString("SQLITE_DSN")

	config.Redis.Host = v.GetString("REDIS_HOST")
	config.Redis.Port = v.GetString("REDIS_PORT")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")
	config.Redis.MaxRetries = v.GetInt("REDIS_MAX_RETRIES")
	config.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")
	config.Redis.MinIdleConn = v.GetInt("REDIS_MIN_IDLE_CONN")

	config.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	config.RateLimit.RequestsPerSecond = v.GetFloat64("RATE_LIMIT_RPS")
	config.RateLimit.BurstCapacity = v.GetInt("RATE_LIMIT_BURST")

	config.Cache.Enabled = v.GetBool("CACHE_ENABLED")
	config.Cache.TTLSeconds = v.GetInt("CACHE_TTL_SECONDS")

	config.Logger.Level = v.GetString("LOG_LEVEL")
	config.Logger.Format = v.GetString("LOG_FORMAT")
	config.Logger.OutputPath = v.GetString("LOG_OUTPUT_PATH")
	config.Logger.SlowQuerySeconds = v.GetFloat64("LOG_SLOW_QUERY_SECONDS")
	config.Logger.EnableSampling = v.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = v.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = v.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "3000")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("SQLITE_DSN", ":memory:")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_MAX_RETRIES", 3)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONN", 2)

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL_SECONDS", 60)

	// Logger defaults
	_ = v.BindEnv("APP_ENV")
	if v.GetString("APP_ENV") == "production" {
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("LOG_FORMAT", "json")
		v.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		v.SetDefault("LOG_LEVEL", "debug")
		v.SetDefault("LOG_FORMAT", "console")
		v.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	v.SetDefault("LOG_OUTPUT_PATH", "stdout")
	v.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	v.SetDefault("SERVICE_NAME", "user-post-service")
	v.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.App.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT must not be empty"))
	}
	if c.App.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be positive"))
	}

	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverSQLite:
		if c.Store.SQLiteDSN == "" {
			errs = append(errs, errors.New("SQLITE_DSN must not be empty when STORE_DRIVER=sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q (want %q or %q)", c.Store.Driver, StoreDriverMemory, StoreDriverSQLite))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive when rate limiting is enabled"))
		}
		if c.RateLimit.BurstCapacity <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_BURST must be positive when rate limiting is enabled"))
		}
	}
	if c.Cache.Enabled && c.Cache.TTLSeconds <= 0 {
		errs = append(errs, errors.New("CACHE_TTL_SECONDS must be positive when caching is enabled"))
	}
	if c.NeedsRedis() && (c.Redis.Host == "" || c.Redis.Port == "") {
		errs = append(errs, errors.New("REDIS_HOST and REDIS_PORT are required when rate limiting or caching is enabled"))
	}

	return errors.Join(errs...)
}

// NeedsRedis reports whether any enabled feature uses Redis.
func (c *Config) NeedsRedis() bool {
	return c.RateLimit.Enabled || c.Cache.Enabled
}

// Addr returns the Redis address in host:port form
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
