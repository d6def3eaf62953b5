package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	WordlistPath   string
	HistoryCap     int
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		WordlistPath:   getEnv("WORDLIST_PATH", ""),
		HistoryCap:     getEnvInt("HISTORY_CAP", 30),
		RateLimitRPS:   float64(getEnvInt("RATE_LIMIT_RPS", 10)),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
