package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var ErrDiscordTokenNotSet = errors.New("DISCORD_TOKEN is not set")

type Config struct {
	DiscordToken  string
	CommandPrefix string
	BindingsPath  string
	SoundsPath    string
}

func LoadConfig() (*Config, error) {
	// Load environment variables from .env file; a missing file is fine,
	// the environment may already be populated.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	discordToken := os.Getenv("DISCORD_TOKEN")
	if discordToken == "" {
		return nil, ErrDiscordTokenNotSet
	}

	return &Config{
		DiscordToken:  discordToken,
		CommandPrefix: getEnv("COMMAND_PREFIX", "!"),
		BindingsPath:  getEnv("BINDINGS_PATH", "bindings.json"),
		SoundsPath:    getEnv("SOUNDS_PATH", "sounds"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
