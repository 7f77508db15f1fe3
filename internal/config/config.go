package config

import "os"

type Config struct {
	Port         string
	Env          string
	WordlistPath string
	RateLimitRPS float64
	RateBurst    int
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		WordlistPath: getEnv("WORDLIST_PATH", ""),
		RateLimitRPS: 10,
		RateBurst:    20,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
