package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHelpMessage returns the rules and the command list
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)

	// GetJoinGameMessage returns a greeting for a player joining a game
	GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error)

	// GetReadyPromptMessage returns a turn summary followed by the prompt to start it
	GetReadyPromptMessage(ctx context.Context, input *GetReadyPromptMessageInput) (*GetReadyPromptMessageOutput, error)

	// GetTimerMessage returns the line posted when a countdown starts, is reset or expires
	GetTimerMessage(ctx context.Context, input *GetTimerMessageInput) (*GetTimerMessageOutput, error)

	// GetGameOverMessage returns the banner posted with the final standings
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
