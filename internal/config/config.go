// Package config reads the bot settings from the environment, after loading
// a .env file from the working directory when one exists.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the bot
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis is optional; without an address finished games are kept in memory
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// WordsDir is a directory of word bank files. Empty means the bundled bank.
	WordsDir string `env:"WORDS_DIR"`

	// AllowedChannels restricts the bot to these channels. Empty means everywhere.
	AllowedChannels []string `env:"ALLOWED_CHANNELS" envSeparator:","`

	// AdminIDs are the users who may run the admin commands
	AdminIDs []string `env:"ADMIN_IDS" envSeparator:","`

	CountdownInterval time.Duration `env:"COUNTDOWN_INTERVAL" envDefault:"1s"`
	MinPlayers        int           `env:"MIN_PLAYERS" envDefault:"2"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads the configuration
func Load() (*Config, error) {
	// a missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// ValidateBot checks the settings needed to connect to Discord
func (c *Config) ValidateBot() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN environment variable is required")
	}
	if c.ApplicationID == "" {
		return errors.New("APPLICATION_ID environment variable is required")
	}
	if c.CountdownInterval <= 0 {
		return errors.New("COUNTDOWN_INTERVAL must be positive")
	}
	return nil
}
