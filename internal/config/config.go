package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the environment when one exists. Variables
// already set in the environment win.
func Load(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns key parsed as an int, or fallback when unset or malformed.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// GetDuration returns key parsed with time.ParseDuration, or fallback.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}

// Settings gathers the service configuration.
type Settings struct {
	Port           string
	DBPath         string
	DatabaseURL    string
	SeedPath       string
	StationWorkers int
	HistoryLimit   int
	WriteTimeout   time.Duration
}

// FromEnv reads Settings from the environment with defaults for local runs.
func FromEnv() Settings {
	return Settings{
		Port:           Get("PORT", "8080"),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    Get("DATABASE_URL", ""),
		SeedPath:       Get("SEED_PATH", "data/seeds/stations.json"),
		StationWorkers: GetInt("STATION_WORKERS", 4),
		HistoryLimit:   GetInt("HISTORY_LIMIT", 50),
		WriteTimeout:   GetDuration("WRITE_TIMEOUT", 30*time.Second),
	}
}
