package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the server's runtime settings.
type Config struct {
	Addr       string
	TickHz     int
	SnapshotHz int
	AISeed     int64 // 0 means seed from the global source
}

// Load reads settings from the environment, consulting a .env file when one
// is present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded settings from .env")
	}
	return Config{
		Addr:       getString("PONG_ADDR", ":8080"),
		TickHz:     getInt("PONG_TICK_HZ", 60),
		SnapshotHz: getInt("PONG_SNAPSHOT_HZ", 20),
		AISeed:     getInt64("PONG_AI_SEED", 0),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
