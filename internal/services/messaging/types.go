package messaging

import (
	"github.com/KirkDiggler/charades/internal/common/random"
)

// TimerEvent is a point in the life of a question countdown
type TimerEvent string

const (
	// TimerEventStarted is posted once the word was delivered
	TimerEventStarted TimerEvent = "started"

	// TimerEventReset is posted when the question was resolved before the limit
	TimerEventReset TimerEvent = "reset"

	// TimerEventExpired is posted when the limit elapsed
	TimerEventExpired TimerEvent = "expired"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Random picks between message variants
	Random random.Random

	// CommandName is the slash command the help text refers to. Defaults to "charades".
	CommandName string
}

// GetHelpMessageInput contains parameters for the help text
type GetHelpMessageInput struct {
	// GameCreated prefixes the help with the announcement of a new game
	GameCreated bool
}

// GetHelpMessageOutput contains the help text
type GetHelpMessageOutput struct {
	Title   string
	Message string
}

// GetJoinGameMessageInput contains parameters for getting a join game message
type GetJoinGameMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// AlreadyJoined indicates if the player was already in the game
	AlreadyJoined bool
}

// GetJoinGameMessageOutput contains the greeting for the channel and the
// private note for the player
type GetJoinGameMessageOutput struct {
	Message string

	// DirectMessage tells the player where their words will arrive. Empty
	// when the player was already in the game.
	DirectMessage string
}

// GetReadyPromptMessageInput contains the turn to announce
type GetReadyPromptMessageInput struct {
	// TurnSummary is the public description of the pending turn
	TurnSummary string
}

// GetReadyPromptMessageOutput contains the announcement
type GetReadyPromptMessageOutput struct {
	Message string
}

// GetTimerMessageInput contains parameters for a countdown line
type GetTimerMessageInput struct {
	Event TimerEvent

	// PlayerName is the player who was sent the word
	PlayerName string

	// Detail is appended to the line, e.g. the outcome of the cancellation
	Detail string
}

// GetTimerMessageOutput contains the countdown line
type GetTimerMessageOutput struct {
	Message string
}

// GetGameOverMessageInput contains the final standings
type GetGameOverMessageInput struct {
	Standings string

	// ContentExhausted is set when the game ended because no words were left
	ContentExhausted bool
}

// GetGameOverMessageOutput contains the game over banner
type GetGameOverMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string

	// Expected is false when the error is not a game rule rejection and
	// should be logged
	Expected bool
}
