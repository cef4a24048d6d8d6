package models

import (
	"time"
)

// GameResult is the archived summary of a finished game
type GameResult struct {
	// ID is the unique identifier of the game
	ID string

	// ChannelID is the Discord channel the game was played in
	ChannelID string

	// StartedAt is when the game was created
	StartedAt time.Time

	// FinishedAt is when the game was ended
	FinishedAt time.Time

	// Turns is the number of turns that were dealt
	Turns int

	// Standings are the final scores in roster order
	Standings []*Standing
}
