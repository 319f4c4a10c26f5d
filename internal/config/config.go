package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"weather-service/internal/api"
	"weather-service/internal/models"

	"github.com/joho/godotenv"
)

// Cache drivers.
const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Env  string
	Port string

	WeatherAPIKey string
	WeatherAPIURL string
	HTTPTimeout   time.Duration

	CacheDriver        string
	RedisURL           string
	CacheTimeout       time.Duration
	CacheCorruptAsMiss bool

	KafkaBrokers   []string
	KafkaTopic     string
	KafkaWarmCache bool
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("APP_ENV", "production"),
		Port:          getEnv("PORT", "8080"),
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),
		WeatherAPIURL: getEnv("WEATHER_API_URL", api.DefaultBaseURL),
		CacheDriver:   strings.ToLower(getEnv("CACHE_DRIVER", DriverRedis)),
		RedisURL:      os.Getenv("REDIS_URL"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "weather-updates"),
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTimeout, err = getDuration("CACHE_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheCorruptAsMiss, err = getBool("CACHE_CORRUPT_AS_MISS", false); err != nil {
		return nil, err
	}
	if cfg.KafkaWarmCache, err = getBool("KAFKA_WARM_CACHE", false); err != nil {
		return nil, err
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on settings the service cannot start without.
func (c *Config) Validate() error {
	if c.WeatherAPIKey == "" {
		return &models.ConfigError{Key: "WEATHER_API_KEY", Reason: "not set"}
	}
	if c.WeatherAPIURL == "" {
		return &models.ConfigError{Key: "WEATHER_API_URL", Reason: "empty"}
	}
	switch c.CacheDriver {
	case DriverRedis:
		if c.RedisURL == "" {
			return &models.ConfigError{Key: "REDIS_URL", Reason: "required when CACHE_DRIVER=redis"}
		}
	case DriverMemory:
	default:
		return &models.ConfigError{Key: "CACHE_DRIVER", Reason: "must be redis or memory, got " + strconv.Quote(c.CacheDriver)}
	}
	if c.KafkaWarmCache && len(c.KafkaBrokers) == 0 {
		return &models.ConfigError{Key: "KAFKA_BROKERS", Reason: "required when KAFKA_WARM_CACHE is on"}
	}
	return nil
}

// FeedEnabled reports whether the Kafka observation feed is configured.
func (c *Config) FeedEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, &models.ConfigError{Key: key, Reason: err.Error()}
	}
	if d <= 0 {
		return 0, &models.ConfigError{Key: key, Reason: "must be positive"}
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, &models.ConfigError{Key: key, Reason: err.Error()}
	}
	return b, nil
}
