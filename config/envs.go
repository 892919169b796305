package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP       string // Host IP for the server
	RESTPort     int    // Port for the REST API
	GinMode      string // Mode for the Gin framework (e.g., release, debug, test)
	MaxBoardRows int    // Upper bound on board rows accepted from clients
	MaxBoardCols int    // Upper bound on board columns accepted from clients
}

// MinBoardDimension is the smallest board side the API accepts.
// Anything below this is useless for pathfinding demos and breaks the
// lattice-based maze generators.
const MinBoardDimension = 5

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:       getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:     getEnvIntWithDefault("REST_PORT", 8080),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		MaxBoardRows: getEnvIntWithDefault("MAX_BOARD_ROWS", 100),
		MaxBoardCols: getEnvIntWithDefault("MAX_BOARD_COLS", 100),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault retrieves the value of an environment variable as an integer,
// or returns a default value if not set. A set but unparsable value is fatal.
func getEnvIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
