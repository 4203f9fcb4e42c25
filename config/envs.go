package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	GridWidth  int    // Grid width in cells
	GridHeight int    // Grid height in cells
	TickMillis int    // Simulation step interval (in milliseconds)
	Seed       uint64 // PRNG seed for food placement, 0 = time-based
	Frontend   string // "raylib" or "term"
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when present; every
// value has a playable default.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		GridWidth:  getEnvAsInt("SNAKE_GRID_WIDTH", 20),
		GridHeight: getEnvAsInt("SNAKE_GRID_HEIGHT", 20),
		TickMillis: getEnvAsInt("SNAKE_TICK_MS", 100),
		Seed:       uint64(getEnvAsInt("SNAKE_SEED", 0)),
		Frontend:   getEnv("SNAKE_FRONTEND", "raylib"),
	}
}

// getEnv retrieves the value of an environment variable or the fallback if not set.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves the value of an environment variable as an integer,
// falling back when unset and failing fast when unparsable.
func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[CONFIG] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
