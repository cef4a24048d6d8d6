package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/charades/internal/services/game"
	"github.com/KirkDiggler/charades/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	charades   *CharadesCommand
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	GameService      game.Service
	MessagingService messaging.Service

	// Access restricts channels and admin subcommands
	Access *Access

	CountdownInterval time.Duration
	MinPlayers        int
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	charades, err := NewCharadesCommand(&CharadesCommandConfig{
		GameService:       cfg.GameService,
		MessagingService:  cfg.MessagingService,
		Access:            cfg.Access,
		CountdownInterval: cfg.CountdownInterval,
		MinPlayers:        cfg.MinPlayers,
	})
	if err != nil {
		return nil, err
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Slash commands, DM channels and channel messages are all the bot needs
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		charades:   charades,
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.charades); err != nil {
		return fmt.Errorf("failed to register charades command: %w", err)
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the countdowns, removes the commands and closes the Discord connection
func (b *Bot) Stop() error {
	b.charades.Close()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Error().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		} else {
			log.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Info().Str("command", cmd.GetName()).Str("guild_id", b.config.GuildID).Msg("registering guild command")
	} else {
		log.Info().Str("command", cmd.GetName()).Msg("registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().Str("command", cmd.GetName()).Str("command_id", createdCmd.ID).Msg("registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	if err := h.Handle(s, i); err != nil {
		log.Error().Err(err).
			Str("command", name).
			Str("channel_id", i.ChannelID).
			Msg("error handling command")
	}
}
