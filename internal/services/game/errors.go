package game

// GameError is a custom error type for game-related errors. The text of a
// rejection is safe to relay to the chat as is.
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Rejections of session operations. None of them change any state.
const (
	ErrInsufficientRoster    GameError = "You cannot leave the game: the minimum number of players has been reached."
	ErrActivePlayerLocked    GameError = "You cannot leave the game right now: the current player must either skip the question or answer it first."
	ErrQuestionAlreadyActive GameError = "Cannot start the task: the previous question is not finished yet."
	ErrNoActiveQuestion      GameError = "There is no active question."
	ErrUnknownPlayer         GameError = "That user is not in the game."
	ErrScoreFloor            GameError = "A score cannot go below 0."
	ErrNoTurnAssigned        GameError = "No turn is waiting to be played."
	ErrNoPlayers             GameError = "There are no players in the game."
	ErrNotEnoughPlayers      GameError = "Not enough players to play. The minimum is 2."

	// ErrContentExhausted means every word has been dealt and the game cannot continue
	ErrContentExhausted GameError = "The word bank is exhausted: there are no words left to play."
)

// Registry errors
const (
	ErrGameNotFound      GameError = "There is no game running in this channel."
	ErrGameAlreadyExists GameError = "A game is already running in this channel."
	ErrResultNotFound    GameError = "No finished game with that ID was played in this channel."
)

// Configuration errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilCatalog       GameError = "task catalog cannot be nil"
	ErrNilBank          GameError = "word bank cannot be nil"
	ErrNilWordLoader    GameError = "word loader cannot be nil"
	ErrNilResultsRepo   GameError = "results repository cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrEmptyChannelID   GameError = "channel ID cannot be empty"
	ErrEmptyPlayerID    GameError = "player ID cannot be empty"
)
