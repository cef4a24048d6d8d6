package results

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/charades/internal/repositories/results Repository

import (
	"context"

	"github.com/KirkDiggler/charades/internal/models"
)

// Repository archives finished games and the per-channel all-time scores
type Repository interface {
	// SaveResult archives a finished game and adds its scores to the channel's hall of fame
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves an archived game by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// ListChannelResults retrieves the archived games of a channel, most recent first
	ListChannelResults(ctx context.Context, input *ListChannelResultsInput) (*ListChannelResultsOutput, error)

	// GetHallOfFame retrieves the all-time scores of a channel, best first
	GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error)
}
