package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/charades/internal/common/clock"
	"github.com/KirkDiggler/charades/internal/common/random"
	"github.com/KirkDiggler/charades/internal/common/uuid"
	"github.com/KirkDiggler/charades/internal/config"
	"github.com/KirkDiggler/charades/internal/handlers/discord"
	"github.com/KirkDiggler/charades/internal/repositories/results"
	gameService "github.com/KirkDiggler/charades/internal/services/game"
	"github.com/KirkDiggler/charades/internal/services/messaging"
	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and run the bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	resultsRepo, closeRepo, err := newResultsRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	rnd := random.New(&random.Config{})

	gameSvc, err := gameService.New(&gameService.Config{
		MinPlayers:    cfg.MinPlayers,
		Catalog:       tasks.Default(),
		WordLoader:    wordSource(cfg.WordsDir),
		ResultsRepo:   resultsRepo,
		Random:        rnd,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Random: rnd,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		GameService:       gameSvc,
		MessagingService:  messagingSvc,
		Access:            discord.NewAccess(cfg.AllowedChannels, cfg.AdminIDs),
		CountdownInterval: cfg.CountdownInterval,
		MinPlayers:        cfg.MinPlayers,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("Bot has been shut down")
	return nil
}

// newResultsRepository archives to Redis when an address is configured and
// keeps results in memory otherwise
func newResultsRepository(cfg *config.Config) (results.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR not set, finished games are kept in memory only")
		return results.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := results.NewRedis(&results.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create results repository: %w", err)
	}

	log.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("archiving results to Redis")

	return repo, func() { redisClient.Close() }, nil
}
