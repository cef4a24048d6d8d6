package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/charades/internal/services/countdown"
	"github.com/KirkDiggler/charades/internal/services/game"
	"github.com/KirkDiggler/charades/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Subcommands of /charades
const (
	SubcommandGame        = "game"
	SubcommandHelp        = "help"
	SubcommandJoin        = "join"
	SubcommandLeave       = "leave"
	SubcommandTop         = "top"
	SubcommandWhoIsNext   = "whoisnext"
	SubcommandGo          = "go"
	SubcommandCancel      = "cancel"
	SubcommandWin         = "win"
	SubcommandAddPoint    = "addpoint"
	SubcommandRemovePoint = "removepoint"
	SubcommandExit        = "exit"
	SubcommandHallOfFame  = "halloffame"
	SubcommandHistory     = "history"

	optionHandle = "handle"
	optionGameID = "game"
)

const (
	msgChannelNotAllowed = "Charades is not enabled in this channel."
	msgNotAdmin          = "You do not have permission for this command!"
	msgNoDirectMessages  = "I could not send you a direct message. Allow direct messages from server members, then leave and join again."
)

// CharadesCommandConfig holds the dependencies of the /charades command
type CharadesCommandConfig struct {
	GameService      game.Service
	MessagingService messaging.Service
	Access           *Access

	// CountdownInterval is how often a running question is checked. Defaults to one second.
	CountdownInterval time.Duration

	// MinPlayers is the roster size at which the first turn is announced. Defaults to 2.
	MinPlayers int
}

// CharadesCommand handles the /charades command
type CharadesCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	access           *Access
	interval         time.Duration
	minPlayers       int

	// ctx bounds the countdowns; Close cancels it and waits for them
	ctx     context.Context
	cancel  context.CancelFunc
	watches sync.WaitGroup
}

// NewCharadesCommand creates a new charades command handler
func NewCharadesCommand(cfg *CharadesCommandConfig) (*CharadesCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	access := cfg.Access
	if access == nil {
		access = NewAccess(nil, nil)
	}
	interval := cfg.CountdownInterval
	if interval <= 0 {
		interval = countdown.DefaultInterval
	}
	minPlayers := cfg.MinPlayers
	if minPlayers < game.DefaultMinPlayers {
		minPlayers = game.DefaultMinPlayers
	}

	handleOption := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optionHandle,
			Description: "Username of the player",
			Required:    true,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &CharadesCommand{
		BaseCommand: BaseCommand{
			Name:        "charades",
			Description: "Word task party game commands",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand(SubcommandGame, "Create a new game (admin)"),
				subcommand(SubcommandHelp, "Show the rules and commands"),
				subcommand(SubcommandJoin, "Join the game"),
				subcommand(SubcommandLeave, "Leave the game"),
				subcommand(SubcommandTop, "Show players and scores"),
				subcommand(SubcommandWhoIsNext, "Show who is next and the task"),
				subcommand(SubcommandGo, "Send the word to the current player and start the timer"),
				subcommand(SubcommandCancel, "Skip the current question (admin or current player)"),
				subcommand(SubcommandWin, "Mark the current question as guessed (admin or current player)"),
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAddPoint,
					Description: "Add a point to a player (admin)",
					Options:     handleOption,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRemovePoint,
					Description: "Remove a point from a player (admin)",
					Options:     handleOption,
				},
				subcommand(SubcommandExit, "End the game and show the result (admin)"),
				subcommand(SubcommandHallOfFame, "Show the all-time scores of this channel"),
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandHistory,
					Description: "Show the recent games of this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        optionGameID,
							Description: "ID of a finished game to show in full",
						},
					},
				},
			},
		},
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		access:           access,
		interval:         interval,
		minPlayers:       minPlayers,
		ctx:              ctx,
		cancel:           cancel,
	}, nil
}

func subcommand(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
	}
}

// Close stops every running countdown and waits for them to return
func (c *CharadesCommand) Close() {
	c.cancel()
	c.watches.Wait()
}

// invoker is the user who ran a command
type invoker struct {
	ID     string
	Handle string
	Name   string
}

func invokerOf(i *discordgo.InteractionCreate) invoker {
	var user *discordgo.User
	var nick string
	if i.Member != nil {
		user = i.Member.User
		nick = i.Member.Nick
	}
	if user == nil {
		user = i.User
	}
	if user == nil {
		return invoker{}
	}

	name := nick
	if name == "" {
		name = user.GlobalName
	}
	if name == "" {
		name = user.Username
	}

	return invoker{
		ID:     user.ID,
		Handle: user.Username,
		Name:   name,
	}
}

// Handle processes a Discord interaction for the charades command
func (c *CharadesCommand) Handle(s DiscordSession, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if !c.access.ChannelAllowed(i.ChannelID) {
		return RespondWithEphemeralMessage(s, i, msgChannelNotAllowed)
	}

	user := invokerOf(i)
	sub := data.Options[0]

	switch sub.Name {
	case SubcommandGame, SubcommandAddPoint, SubcommandRemovePoint, SubcommandExit:
		if !c.access.IsAdmin(user.ID) {
			return RespondWithEphemeralMessage(s, i, msgNotAdmin)
		}
	case SubcommandCancel, SubcommandWin:
		if !c.access.IsAdmin(user.ID) && !c.isActivePlayer(i.ChannelID, user.ID) {
			return RespondWithEphemeralMessage(s, i, msgNotAdmin)
		}
	}

	switch sub.Name {
	case SubcommandGame:
		return c.handleGame(s, i, user)
	case SubcommandHelp:
		return c.handleHelp(s, i)
	case SubcommandJoin:
		return c.handleJoin(s, i, user)
	case SubcommandLeave:
		return c.handleLeave(s, i, user)
	case SubcommandTop:
		return c.handleTop(s, i)
	case SubcommandWhoIsNext:
		return c.handleWhoIsNext(s, i)
	case SubcommandGo:
		return c.handleGo(s, i)
	case SubcommandCancel:
		return c.handleCancel(s, i)
	case SubcommandWin:
		return c.handleWin(s, i)
	case SubcommandAddPoint:
		return c.handleAdjustScore(s, i, sub, true)
	case SubcommandRemovePoint:
		return c.handleAdjustScore(s, i, sub, false)
	case SubcommandExit:
		return c.handleExit(s, i)
	case SubcommandHallOfFame:
		return c.handleHallOfFame(s, i)
	case SubcommandHistory:
		return c.handleHistory(s, i, sub)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

func (c *CharadesCommand) isActivePlayer(channelID, userID string) bool {
	out, err := c.gameService.GetGame(c.ctx, &game.GetGameInput{ChannelID: channelID})
	if err != nil {
		return false
	}
	return out.Session.IsActivePlayer(userID)
}

// handleGame creates a game in the channel
func (c *CharadesCommand) handleGame(s DiscordSession, i *discordgo.InteractionCreate, user invoker) error {
	out, err := c.gameService.CreateGame(c.ctx, &game.CreateGameInput{
		ChannelID: i.ChannelID,
		CreatorID: user.ID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	log.Info().
		Str("channel_id", i.ChannelID).
		Str("game_id", out.GameID).
		Int("words", out.Words).
		Msg("game created")

	help, err := c.messagingService.GetHelpMessage(c.ctx, &messaging.GetHelpMessageInput{GameCreated: true})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderHelp(help))
}

// handleHelp shows the rules
func (c *CharadesCommand) handleHelp(s DiscordSession, i *discordgo.InteractionCreate) error {
	help, err := c.messagingService.GetHelpMessage(c.ctx, &messaging.GetHelpMessageInput{})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderHelp(help))
}

// handleJoin adds the invoker to the game and announces the first turn once
// the roster is large enough
func (c *CharadesCommand) handleJoin(s DiscordSession, i *discordgo.InteractionCreate, user invoker) error {
	out, err := c.gameService.Join(c.ctx, &game.JoinInput{
		ChannelID: i.ChannelID,
		PlayerID:  user.ID,
		Handle:    user.Handle,
		Name:      user.Name,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	greeting, err := c.messagingService.GetJoinGameMessage(c.ctx, &messaging.GetJoinGameMessageInput{
		PlayerName:    user.Name,
		AlreadyJoined: out.AlreadyJoined,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	if err := RespondWithMessage(s, i, greeting.Message); err != nil {
		return err
	}

	if out.AlreadyJoined {
		return nil
	}

	if err := SendDirectMessage(s, user.ID, greeting.DirectMessage); err != nil {
		log.Warn().Err(err).
			Str("channel_id", i.ChannelID).
			Str("user_id", user.ID).
			Msg("failed to open direct messages with player")
		c.post(s, i.ChannelID, fmt.Sprintf("%s: %s", user.Name, msgNoDirectMessages))
	}

	if out.PlayerCount == c.minPlayers {
		_, err := c.gameService.CurrentTurn(c.ctx, &game.CurrentTurnInput{ChannelID: i.ChannelID})
		if errors.Is(err, game.ErrNoTurnAssigned) {
			c.nextTurn(s, i.ChannelID)
		}
	}

	return nil
}

// handleLeave removes the invoker from the game
func (c *CharadesCommand) handleLeave(s DiscordSession, i *discordgo.InteractionCreate, user invoker) error {
	out, err := c.gameService.Leave(c.ctx, &game.LeaveInput{
		ChannelID: i.ChannelID,
		PlayerID:  user.ID,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	message := out.Message
	if out.NextTurn != nil {
		prompt, err := c.messagingService.GetReadyPromptMessage(c.ctx, &messaging.GetReadyPromptMessageInput{
			TurnSummary: out.Message,
		})
		if err == nil {
			message = prompt.Message
		}
	}

	if err := RespondWithMessage(s, i, message); err != nil {
		return err
	}

	if out.ContentExhausted {
		c.endGame(s, i.ChannelID, true)
	}

	return nil
}

// handleTop shows the standings
func (c *CharadesCommand) handleTop(s DiscordSession, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetLeaderboard(c.ctx, &game.GetLeaderboardInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithMessage(s, i, out.Message)
}

// handleWhoIsNext shows the pending turn. When the last question was resolved
// but no turn followed, one is dealt now.
func (c *CharadesCommand) handleWhoIsNext(s DiscordSession, i *discordgo.InteractionCreate) error {
	summary, err := c.pendingTurn(i.ChannelID)
	if errors.Is(err, game.ErrContentExhausted) {
		if err := RespondWithMessage(s, i, err.Error()); err != nil {
			return err
		}
		c.endGame(s, i.ChannelID, true)
		return nil
	}
	if err != nil {
		return c.respondError(s, i, err)
	}

	prompt, err := c.messagingService.GetReadyPromptMessage(c.ctx, &messaging.GetReadyPromptMessageInput{
		TurnSummary: summary,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithMessage(s, i, prompt.Message)
}

// pendingTurn describes the turn waiting to be played, dealing one if the
// roster is large enough and nobody holds a turn
func (c *CharadesCommand) pendingTurn(channelID string) (string, error) {
	current, err := c.gameService.CurrentTurn(c.ctx, &game.CurrentTurnInput{ChannelID: channelID})
	if err == nil {
		return current.Message, nil
	}
	if !errors.Is(err, game.ErrNoTurnAssigned) {
		return "", err
	}

	found, getErr := c.gameService.GetGame(c.ctx, &game.GetGameInput{ChannelID: channelID})
	if getErr != nil {
		return "", getErr
	}
	if found.Session.PlayerCount() < c.minPlayers {
		return "", err
	}

	dealt, err := c.gameService.StartTurn(c.ctx, &game.StartTurnInput{ChannelID: channelID})
	if err != nil {
		return "", err
	}
	return dealt.Message, nil
}

// handleGo issues the pending question, sends the word privately and starts the countdown
func (c *CharadesCommand) handleGo(s DiscordSession, i *discordgo.InteractionCreate) error {
	issued, err := c.gameService.IssueQuestion(c.ctx, &game.IssueQuestionInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondError(s, i, err)
	}

	if err := SendDirectMessage(s, issued.PlayerID, issued.Word); err != nil {
		log.Error().Err(err).
			Str("channel_id", i.ChannelID).
			Str("user_id", issued.PlayerID).
			Msg("failed to deliver word")

		// the player never saw the word, so the question is void
		cancelled, cancelErr := c.gameService.CancelQuestion(c.ctx, &game.CancelQuestionInput{ChannelID: i.ChannelID})
		message := fmt.Sprintf("Could not send the word to %s. %s", issued.PlayerName, msgNoDirectMessages)
		if cancelErr == nil {
			message += "\n" + cancelled.Message
		}
		if err := RespondWithMessage(s, i, message); err != nil {
			return err
		}
		if cancelErr == nil {
			c.nextTurn(s, i.ChannelID)
		}
		return nil
	}

	started, err := c.messagingService.GetTimerMessage(c.ctx, &messaging.GetTimerMessageInput{
		Event:      messaging.TimerEventStarted,
		PlayerName: issued.PlayerName,
	})
	if err != nil {
		return c.respondError(s, i, err)
	}

	if err := RespondWithMessage(s, i, started.Message); err != nil {
		return err
	}

	log.Debug().
		Str("channel_id", i.ChannelID).
		Str("user_id", issued.PlayerID).
		Int("question", issued.Question).
		Dur("limit", issued.TimeLimit).
		Msg("question issued")

	c.watches.Add(1)
	go func() {
		defer c.watches.Done()
		c.watchQuestion(s, i.ChannelID, issued)
	}()

	return nil
}

// watchQuestion runs the countdown of an issued question. On expiry the
// question is cancelled and the next turn dealt.
func (c *CharadesCommand) watchQuestion(s DiscordSession, channelID string, issued *game.IssueQuestionOutput) {
	out, err := countdown.Watch(c.ctx, &countdown.WatchInput{
		Limit:    issued.TimeLimit,
		Interval: c.interval,
		Resolved: func() bool {
			open, err := c.gameService.QuestionOpen(c.ctx, &game.QuestionOpenInput{
				ChannelID: channelID,
				Question:  issued.Question,
			})
			return err != nil || !open
		},
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("countdown failed")
		return
	}

	switch out.Outcome {
	case countdown.OutcomeResolved:
		// a game that ended took its question with it
		if _, err := c.gameService.GetGame(c.ctx, &game.GetGameInput{ChannelID: channelID}); err != nil {
			return
		}
		c.postTimer(s, channelID, messaging.TimerEventReset, "")
	case countdown.OutcomeExpired:
		expired, err := c.gameService.ExpireQuestion(c.ctx, &game.ExpireQuestionInput{
			ChannelID: channelID,
			Question:  issued.Question,
		})
		if err != nil {
			// resolved at the very last moment
			if errors.Is(err, game.ErrNoActiveQuestion) || errors.Is(err, game.ErrGameNotFound) {
				return
			}
			log.Error().Err(err).Str("channel_id", channelID).Msg("failed to expire question")
			return
		}
		c.postTimer(s, channelID, messaging.TimerEventExpired, expired.Message)
		c.nextTurn(s, channelID)
	}
}

// handleCancel skips the active question
func (c *CharadesCommand) handleCancel(s DiscordSession, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.CancelQuestion(c.ctx, &game.CancelQuestionInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondError(s, i, err)
	}

	if err := RespondWithMessage(s, i, out.Message); err != nil {
		return err
	}

	c.nextTurn(s, i.ChannelID)
	return nil
}

// handleWin credits the active player and deals the next turn
func (c *CharadesCommand) handleWin(s DiscordSession, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.MarkAnswered(c.ctx, &game.MarkAnsweredInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondError(s, i, err)
	}

	if err := RespondWithMessage(s, i, out.Message); err != nil {
		return err
	}

	c.nextTurn(s, i.ChannelID)
	return nil
}

// handleAdjustScore adds or removes a point by handle and shows the standings
func (c *CharadesCommand) handleAdjustScore(s DiscordSession, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, add bool) error {
	var handle string
	for _, opt := range sub.Options {
		if opt.Name == optionHandle {
			handle = opt.StringValue()
		}
	}
	if handle == "" {
		return RespondWithError(s, i, "No player username given.")
	}

	input := &game.AdjustScoreInput{
		ChannelID:  i.ChannelID,
		Identifier: handle,
		ByHandle:   true,
	}

	var err error
	if add {
		_, err = c.gameService.AddPoint(c.ctx, input)
	} else {
		_, err = c.gameService.RemovePoint(c.ctx, input)
	}
	if err != nil {
		return c.respondError(s, i, err)
	}

	return c.handleTop(s, i)
}

// handleExit ends the game and shows the final standings
func (c *CharadesCommand) handleExit(s DiscordSession, i *discordgo.InteractionCreate) error {
	message, err := c.finish(i.ChannelID, false)
	if message == "" {
		return c.respondError(s, i, err)
	}

	return RespondWithMessage(s, i, message)
}

// handleHallOfFame shows the all-time scores of the channel
func (c *CharadesCommand) handleHallOfFame(s DiscordSession, i *discordgo.InteractionCreate) error {
	out, err := c.gameService.GetHallOfFame(c.ctx, &game.GetHallOfFameInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithEmbed(s, i, renderHallOfFame(out))
}

// handleHistory lists the recent games of the channel, or shows one in full
func (c *CharadesCommand) handleHistory(s DiscordSession, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	var gameID string
	for _, opt := range sub.Options {
		if opt.Name == optionGameID {
			gameID = opt.StringValue()
		}
	}

	if gameID != "" {
		out, err := c.gameService.GetResult(c.ctx, &game.GetResultInput{
			ChannelID: i.ChannelID,
			GameID:    gameID,
		})
		if err != nil {
			return c.respondError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)
	}

	out, err := c.gameService.ListResults(c.ctx, &game.ListResultsInput{ChannelID: i.ChannelID})
	if err != nil {
		return c.respondError(s, i, err)
	}

	return RespondWithMessage(s, i, out.Message)
}

// nextTurn deals the next turn and announces it in the channel. A bank with
// no words left ends the game.
func (c *CharadesCommand) nextTurn(s DiscordSession, channelID string) {
	out, err := c.gameService.StartTurn(c.ctx, &game.StartTurnInput{ChannelID: channelID})
	if err != nil {
		if errors.Is(err, game.ErrContentExhausted) {
			c.endGame(s, channelID, true)
			return
		}
		c.postError(s, channelID, err)
		return
	}

	prompt, err := c.messagingService.GetReadyPromptMessage(c.ctx, &messaging.GetReadyPromptMessageInput{
		TurnSummary: out.Message,
	})
	if err != nil {
		c.postError(s, channelID, err)
		return
	}

	c.post(s, channelID, prompt.Message)
}

// endGame ends the game from outside a command and posts the final standings
func (c *CharadesCommand) endGame(s DiscordSession, channelID string, exhausted bool) {
	message, err := c.finish(channelID, exhausted)
	if message == "" {
		c.postError(s, channelID, err)
		return
	}
	c.post(s, channelID, message)
}

// finish archives the game and returns the game over banner. The banner is
// returned even when archiving failed, since the game has ended anyway.
func (c *CharadesCommand) finish(channelID string, exhausted bool) (string, error) {
	ended, err := c.gameService.EndGame(c.ctx, &game.EndGameInput{ChannelID: channelID})
	if ended == nil {
		return "", err
	}
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to archive game")
	}

	log.Info().
		Str("channel_id", channelID).
		Str("game_id", ended.Result.ID).
		Int("turns", ended.Result.Turns).
		Bool("exhausted", exhausted).
		Msg("game ended")

	banner, bannerErr := c.messagingService.GetGameOverMessage(c.ctx, &messaging.GetGameOverMessageInput{
		Standings:        ended.Message,
		ContentExhausted: exhausted,
	})
	if bannerErr != nil {
		return ended.Message, err
	}
	return banner.Message, err
}

func (c *CharadesCommand) postTimer(s DiscordSession, channelID string, event messaging.TimerEvent, detail string) {
	out, err := c.messagingService.GetTimerMessage(c.ctx, &messaging.GetTimerMessageInput{
		Event:  event,
		Detail: detail,
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to build timer message")
		return
	}
	c.post(s, channelID, out.Message)
}

func (c *CharadesCommand) post(s DiscordSession, channelID, message string) {
	if _, err := s.ChannelMessageSend(channelID, message); err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to send channel message")
	}
}

func (c *CharadesCommand) postError(s DiscordSession, channelID string, err error) {
	c.post(s, channelID, c.errorText(channelID, err))
}

// respondError answers the interaction with the user-facing text of err
func (c *CharadesCommand) respondError(s DiscordSession, i *discordgo.InteractionCreate, err error) error {
	return RespondWithError(s, i, c.errorText(i.ChannelID, err))
}

func (c *CharadesCommand) errorText(channelID string, err error) string {
	if err == nil {
		return "Something went wrong."
	}

	out, msgErr := c.messagingService.GetErrorMessage(c.ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("command failed")
		return "Something went wrong."
	}
	if !out.Expected {
		log.Error().Err(err).Str("channel_id", channelID).Msg("command failed")
	}
	return out.Message
}
