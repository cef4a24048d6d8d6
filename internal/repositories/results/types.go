package results

import (
	"errors"

	"github.com/KirkDiggler/charades/internal/models"
)

var (
	// ErrResultNotFound is returned when no game is archived under the ID
	ErrResultNotFound = errors.New("result not found")

	// ErrResultAlreadyExists is returned when a game is archived twice
	ErrResultAlreadyExists = errors.New("result already exists")
)

// SaveResultInput contains the game to archive
type SaveResultInput struct {
	Result *models.GameResult
}

// GetResultInput contains parameters for retrieving an archived game
type GetResultInput struct {
	GameID string
}

// ListChannelResultsInput contains parameters for listing a channel's games
type ListChannelResultsInput struct {
	ChannelID string

	// Limit caps the number of results. Zero means no limit.
	Limit int
}

// ListChannelResultsOutput contains a channel's archived games
type ListChannelResultsOutput struct {
	Results []*models.GameResult
}

// GetHallOfFameInput contains parameters for retrieving a channel's hall of fame
type GetHallOfFameInput struct {
	ChannelID string

	// Limit caps the number of entries. Zero means no limit.
	Limit int
}

// GetHallOfFameOutput contains a channel's all-time scores
type GetHallOfFameOutput struct {
	Entries []*models.HallOfFameEntry
}

func validateResult(input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	if input.Result.ID == "" {
		return errors.New("result ID cannot be empty")
	}
	if input.Result.ChannelID == "" {
		return errors.New("channel ID cannot be empty")
	}
	return nil
}
