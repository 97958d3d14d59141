package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken          string
	DatabaseURI       string
	OpenWeatherAPIKey string
	Timezone          string
	TickInterval      time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	tick, err := time.ParseDuration(getEnvOrDefault("SCHEDULER_TICK", "30s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		BotToken:          os.Getenv("BOT_TOKEN"),
		DatabaseURI:       os.Getenv("DATABASE_URI"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		Timezone:          getEnvOrDefault("TZ", "Asia/Jakarta"),
		TickInterval:      tick,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
