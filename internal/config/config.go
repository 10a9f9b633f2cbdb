package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID string
	LogLevel  string
	Port      string
}

func New() *Config {
	// Local runs keep settings in a .env file; deployed environments set real
	// environment variables and the load is a no-op.
	_ = godotenv.Load()

	return &Config{
		ProjectID: os.Getenv("PROJECTID"),
		LogLevel:  os.Getenv("LOGLEVEL"),
		Port:      getPort(os.Getenv("PORT")),
	}
}

func getPort(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}
