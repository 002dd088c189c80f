package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	PropertyID     string
	WhatsAppNumber string
	RateRPS        float64
	RateBurst      int
	CacheTTL       time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		PropertyID:     env("CLOUDBEDS_PROPERTY_ID", ""),
		WhatsAppNumber: env("WHATSAPP_NUMBER", "5214151806060"),
		RateRPS:        float64(atoi("RATE_RPS", 20)),
		RateBurst:      atoi("RATE_BURST", 40),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.PropertyID == "" {
		log.Warn().Msg("CLOUDBEDS_PROPERTY_ID is empty; booking links will carry the placeholder token")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
