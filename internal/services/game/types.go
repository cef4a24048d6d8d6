package game

import (
	"time"

	"github.com/KirkDiggler/charades/internal/common/clock"
	"github.com/KirkDiggler/charades/internal/common/random"
	"github.com/KirkDiggler/charades/internal/common/uuid"
	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/repositories/results"
	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/KirkDiggler/charades/internal/wordbank"
)

// DefaultMinPlayers is the smallest roster a question can be played with
const DefaultMinPlayers = 2

// Config holds configuration for the game service
type Config struct {
	// MinPlayers is the roster size required to issue a question. Defaults to 2.
	MinPlayers int

	// Catalog is the task catalog every game is played with
	Catalog *tasks.Catalog

	// WordLoader loads a fresh word bank for every new game
	WordLoader wordbank.Loader

	// ResultsRepo archives finished games
	ResultsRepo results.Repository

	// Service dependencies
	Random        random.Random
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// SessionConfig holds everything a single game session needs
type SessionConfig struct {
	// ID is the unique identifier of the game
	ID string

	// ChannelID is the Discord channel the game is played in
	ChannelID string

	// Catalog is the task catalog
	Catalog *tasks.Catalog

	// Bank is the word bank the session consumes. The session works on its own copy.
	Bank wordbank.Bank

	// Random picks tasks and words
	Random random.Random

	// StartedAt is recorded in the archived result
	StartedAt time.Time
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ChannelID is the Discord channel ID where the game is being played
	ChannelID string

	// CreatorID is the Discord user ID of the admin creating the game
	CreatorID string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	// GameID is the unique identifier for the created game
	GameID string

	// Words is the number of words loaded into the game
	Words int
}

// GetGameInput defines the input for retrieving the game of a channel
type GetGameInput struct {
	ChannelID string
}

// GetGameOutput contains the game of a channel
type GetGameOutput struct {
	Session *Session
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	ChannelID string
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	// Result is the archived summary of the game
	Result *models.GameResult

	// Message is the final standings, ready to post
	Message string
}

// JoinInput contains parameters for joining a game
type JoinInput struct {
	// ChannelID selects the game. Ignored when calling a Session directly.
	ChannelID string

	// PlayerID is the Discord user ID of the player joining the game
	PlayerID string

	// Handle is the player's public username, if any
	Handle string

	// Name is the display name of the player joining the game
	Name string
}

// JoinOutput contains the result of joining a game
type JoinOutput struct {
	// AlreadyJoined indicates the player was in the game already and nothing changed
	AlreadyJoined bool

	// PlayerCount is the roster size after the call
	PlayerCount int

	Message string
}

// LeaveInput contains parameters for leaving a game
type LeaveInput struct {
	ChannelID string
	PlayerID  string
}

// LeaveOutput contains the result of leaving a game
type LeaveOutput struct {
	// Message announces the departure, followed by the next turn if one was dealt
	Message string

	// NextTurn is set when the leaving player held the pending turn
	NextTurn *models.TurnContext

	// ContentExhausted is set when the pending turn could not be replaced
	// because the word bank ran out
	ContentExhausted bool
}

// StartTurnInput contains parameters for dealing the next turn
type StartTurnInput struct {
	ChannelID string
}

// StartTurnOutput contains the dealt turn
type StartTurnOutput struct {
	// Turn is a copy of the new turn context
	Turn *models.TurnContext

	// Message is the public summary of the turn. It never contains the word.
	Message string
}

// CurrentTurnInput contains parameters for describing the pending turn
type CurrentTurnInput struct {
	ChannelID string
}

// CurrentTurnOutput describes the pending turn
type CurrentTurnOutput struct {
	Turn    *models.TurnContext
	Status  models.GameStatus
	Message string
}

// IssueQuestionInput contains parameters for issuing the pending question
type IssueQuestionInput struct {
	ChannelID string
}

// IssueQuestionOutput is what the caller needs to deliver the word privately
type IssueQuestionOutput struct {
	// Question numbers the issued question within the session
	Question int

	PlayerID   string
	PlayerName string
	Word       string
	TimeLimit  time.Duration
}

// ExpireQuestionInput contains parameters for timing out an issued question
type ExpireQuestionInput struct {
	ChannelID string

	// Question is the number returned by IssueQuestion. Only that question
	// is cancelled; a later one is left alone.
	Question int
}

// QuestionOpenInput contains parameters for checking whether a question is still live
type QuestionOpenInput struct {
	ChannelID string
	Question  int
}

// CancelQuestionInput contains parameters for cancelling the active question
type CancelQuestionInput struct {
	ChannelID string
}

// CancelQuestionOutput contains the result of cancelling a question.
// When no question is active the call fails with ErrNoActiveQuestion instead.
type CancelQuestionOutput struct {
	Resolved bool
	Message  string
}

// MarkAnsweredInput contains parameters for resolving the active question as guessed
type MarkAnsweredInput struct {
	ChannelID string
}

// MarkAnsweredOutput contains the credited score
type MarkAnsweredOutput struct {
	// PlayerID is the player who was credited
	PlayerID string

	// Points is the value of the task that was guessed
	Points int

	// Score is the player's new score
	Score int

	Message string
}

// AdjustScoreInput contains parameters for an admin score adjustment
type AdjustScoreInput struct {
	ChannelID string

	// Identifier is a player ID, or a handle when ByHandle is set.
	// A leading "@" on a handle is ignored.
	Identifier string

	ByHandle bool
}

// AdjustScoreOutput contains the adjusted score
type AdjustScoreOutput struct {
	PlayerID string
	Score    int
}

// GetLeaderboardInput defines the input for retrieving a game's leaderboard
type GetLeaderboardInput struct {
	ChannelID string
}

// GetLeaderboardOutput defines the output for retrieving a game's leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
	Message     string
}

// GetHallOfFameInput defines the input for the all-time scores of a channel
type GetHallOfFameInput struct {
	ChannelID string

	// Limit caps the number of entries. Zero means 10.
	Limit int
}

// GetHallOfFameOutput contains the all-time scores of a channel, best first
type GetHallOfFameOutput struct {
	Entries []*models.HallOfFameEntry
	Message string
}

// ListResultsInput contains parameters for listing finished games
type ListResultsInput struct {
	ChannelID string

	// Limit caps the number of games. Defaults to 5.
	Limit int
}

// ListResultsOutput contains the finished games, most recent first
type ListResultsOutput struct {
	Results []*models.GameResult
	Message string
}

// GetResultInput contains parameters for retrieving a finished game
type GetResultInput struct {
	ChannelID string
	GameID    string
}

// GetResultOutput contains a finished game and its summary
type GetResultOutput struct {
	Result  *models.GameResult
	Message string
}
