package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/charades/internal/services/game Service

import "context"

// Service defines the interface for game operations. Games are keyed by
// the channel they are played in; at most one game runs per channel.
type Service interface {
	// CreateGame starts a new game in a channel with a freshly loaded word bank
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns the session running in a channel
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// EndGame archives the game's result and discards the session
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// Join adds a player to the game
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Leave removes a player from the game
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// StartTurn deals the next task and word
	StartTurn(ctx context.Context, input *StartTurnInput) (*StartTurnOutput, error)

	// CurrentTurn describes the pending turn
	CurrentTurn(ctx context.Context, input *CurrentTurnInput) (*CurrentTurnOutput, error)

	// IssueQuestion activates the pending turn
	IssueQuestion(ctx context.Context, input *IssueQuestionInput) (*IssueQuestionOutput, error)

	// QuestionOpen reports whether an issued question is still unresolved
	QuestionOpen(ctx context.Context, input *QuestionOpenInput) (bool, error)

	// CancelQuestion resolves the active question without scoring
	CancelQuestion(ctx context.Context, input *CancelQuestionInput) (*CancelQuestionOutput, error)

	// ExpireQuestion cancels an issued question whose time ran out
	ExpireQuestion(ctx context.Context, input *ExpireQuestionInput) (*CancelQuestionOutput, error)

	// MarkAnswered resolves the active question as guessed
	MarkAnswered(ctx context.Context, input *MarkAnsweredInput) (*MarkAnsweredOutput, error)

	// AddPoint adds points to a player
	AddPoint(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// RemovePoint removes a point from a player
	RemovePoint(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// GetLeaderboard returns the current standings of the game
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetHallOfFame returns the all-time scores of a channel
	GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error)

	// ListResults returns the most recently finished games of a channel
	ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error)

	// GetResult returns one finished game of a channel
	GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error)
}
