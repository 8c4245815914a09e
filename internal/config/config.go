package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Env holds every runtime setting the server needs. It is resolved once at
// import time so the rest of the codebase can read config.Env.X without
// threading a config struct through every constructor.
var Env = initConfig()

type config struct {
	Port        string
	AdminAPIKey string
	DataDir     string
	PublicDir   string
}

func initConfig() *config {
	// a missing .env file is fine; the environment still wins
	godotenv.Load()

	return &config{
		Port:        getEnv("PORT", "3000"),
		AdminAPIKey: getEnv("ADMIN_API_KEY", "devkey"),
		DataDir:     getEnv("DATA_DIR", "data"),
		PublicDir:   getEnv("PUBLIC_DIR", "public"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
