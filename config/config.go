package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// Analysis thresholds (minimum category size, value-wine cutoffs) are
// compile-time constants in the services package, not configuration.
type Config struct {
	CSVInputPath    string
	ChartsOutputDir string
	HeadRows        int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		CSVInputPath:    getEnv("CSV_INPUT_PATH", "./data/wine_reviews.csv"),
		ChartsOutputDir: getEnv("CHARTS_OUTPUT_DIR", "./output/charts"),
		HeadRows:        getEnvInt("HEAD_ROWS", 5),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
