package config

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	LogLevel  string
	CSV       CSVConfig
	Precision int
}

type CSVConfig struct {
	Delimiter rune
	HasHeader bool
}

// Load reads the optional .env files and builds the configuration from the
// environment. Variables already set in the environment win over .env.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// A missing .env is normal outside development.
		_ = godotenv.Load(f)
	}

	return &Config{
		Env:      getEnv("INFLAMMATION_ENV", "development"),
		LogLevel: getEnv("INFLAMMATION_LOG_LEVEL", "info"),
		CSV: CSVConfig{
			Delimiter: getEnvRune("INFLAMMATION_DELIMITER", ','),
			HasHeader: getEnvBool("INFLAMMATION_HEADER", false),
		},
		Precision: getEnvInt("INFLAMMATION_PRECISION", 3),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvRune(key string, defaultValue rune) rune {
	value := os.Getenv(key)
	if value == `\t` {
		return '\t'
	}
	if r, size := utf8.DecodeRuneInString(value); r != utf8.RuneError && size == len(value) {
		return r
	}
	return defaultValue
}
