package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port           string
	JWTSecret      string
	TaxRate        decimal.Decimal
	DefaultBalance decimal.Decimal
	PageSize       int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8081"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TaxRate:        getDecimal("TAX_RATE", "0.08"),
		DefaultBalance: getDecimal("DEFAULT_BALANCE", "5000"),
		PageSize:       getInt("PAGE_SIZE", 6),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			return d
		}
	}
	d, _ := decimal.NewFromString(fallback)
	return d
}
