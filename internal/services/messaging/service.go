package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/charades/internal/common/random"
	"github.com/KirkDiggler/charades/internal/services/game"
	"github.com/KirkDiggler/charades/internal/wordbank"
)

const defaultCommandName = "charades"

// service implements the Service interface
type service struct {
	random  random.Random
	command string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	if config.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	command := config.CommandName
	if command == "" {
		command = defaultCommandName
	}

	return &service{
		random:  config.Random,
		command: command,
	}, nil
}

// GetHelpMessage returns the rules and the command list
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	c := "/" + s.command
	var b strings.Builder
	if input.GameCreated {
		b.WriteString("The game is created!\n\n")
	}
	b.WriteString("IMPORTANT:\n")
	b.WriteString("- Words are sent by direct message, so allow direct messages from server members\n")
	fmt.Fprintf(&b, "- A turn needs at least %d players\n", game.DefaultMinPlayers)
	b.WriteString("\nJoin and play with the commands below.\n")
	fmt.Fprintf(&b, "- Join the game: `%s join`\n", c)
	fmt.Fprintf(&b, "- Leave the game: `%s leave`\n", c)
	fmt.Fprintf(&b, "- Show players and scores: `%s top`\n", c)
	fmt.Fprintf(&b, "- Show who is next and the task: `%s whoisnext`\n", c)
	fmt.Fprintf(&b, "- Send the word to the current player and start the timer: `%s go`\n", c)
	fmt.Fprintf(&b, "- All-time scores of this channel: `%s halloffame`\n", c)
	fmt.Fprintf(&b, "- Recent games of this channel, or one game by ID: `%s history`\n", c)
	b.WriteString("\nGame admins only:\n")
	fmt.Fprintf(&b, "- Create a game: `%s game`\n", c)
	fmt.Fprintf(&b, "- Add a point to a player: `%s addpoint`\n", c)
	fmt.Fprintf(&b, "- Remove a point from a player: `%s removepoint`\n", c)
	fmt.Fprintf(&b, "- Skip the current question and move on: `%s cancel`\n", c)
	fmt.Fprintf(&b, "- Mark the question as guessed: `%s win`\n", c)
	fmt.Fprintf(&b, "- End the game and show the result: `%s exit`", c)

	return &GetHelpMessageOutput{
		Title:   "Charades",
		Message: b.String(),
	}, nil
}

// GetJoinGameMessage returns a greeting for a player joining a game
func (s *service) GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.AlreadyJoined {
		messages := []string{
			fmt.Sprintf("%s is already in the game!", input.PlayerName),
			fmt.Sprintf("Easy there, %s. You joined already.", input.PlayerName),
			fmt.Sprintf("%s, you are on the roster. No need to join twice.", input.PlayerName),
		}
		return &GetJoinGameMessageOutput{
			Message: s.pick(messages),
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s joined the game. Welcome!", input.PlayerName),
		fmt.Sprintf("A new challenger appears: %s!", input.PlayerName),
		fmt.Sprintf("%s is in. Warm up those miming skills.", input.PlayerName),
		fmt.Sprintf("Look who decided to play! Welcome, %s.", input.PlayerName),
		fmt.Sprintf("%s joined. The words are getting nervous.", input.PlayerName),
	}

	return &GetJoinGameMessageOutput{
		Message:       s.pick(messages),
		DirectMessage: "You joined the game. Words for your tasks will be sent to this chat.",
	}, nil
}

// GetReadyPromptMessage returns a turn summary followed by the prompt to start it
func (s *service) GetReadyPromptMessage(ctx context.Context, input *GetReadyPromptMessageInput) (*GetReadyPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetReadyPromptMessageOutput{
		Message: fmt.Sprintf("%s\n\nWhen the player is ready, get the task with `/%s go`", input.TurnSummary, s.command),
	}, nil
}

// GetTimerMessage returns the line posted when a countdown starts, is reset or expires
func (s *service) GetTimerMessage(ctx context.Context, input *GetTimerMessageInput) (*GetTimerMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Event {
	case TimerEventStarted:
		message = fmt.Sprintf(
			"Task sent to %s. Timer started!\nGuessed? `/%s win`\nTo skip: `/%s cancel`",
			input.PlayerName, s.command, s.command,
		)
	case TimerEventReset:
		message = "Timer reset."
	case TimerEventExpired:
		message = "Time is up."
	default:
		return nil, fmt.Errorf("unknown timer event %q", input.Event)
	}

	if input.Detail != "" {
		message += " " + input.Detail
	}

	return &GetTimerMessageOutput{
		Message: message,
	}, nil
}

// GetGameOverMessage returns the banner posted with the final standings
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	banner := "Game over!"
	if input.ContentExhausted {
		banner = "Game over! Every word has been played."
	}

	return &GetGameOverMessageOutput{
		Message: fmt.Sprintf("%s\n%s", banner, input.Standings),
	}, nil
}

// GetErrorMessage returns a user-friendly error message. Game rule
// rejections are relayed as they are.
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var gameErr game.GameError
	switch {
	case errors.As(input.Err, &gameErr):
		return &GetErrorMessageOutput{
			Message:  gameErr.Error(),
			Expected: true,
		}, nil
	case errors.Is(input.Err, wordbank.ErrLoadFailure):
		return &GetErrorMessageOutput{
			Message: "The word bank could not be loaded, so the game was not created. Ask an admin to check the word files.",
		}, nil
	}

	messages := []string{
		"Something went wrong. Try again in a moment.",
		"Oops, that did not work. Try again in a moment.",
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.Intn(len(messages))]
}
