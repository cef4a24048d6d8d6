package models

import (
	"time"
)

// GameStatus represents the current state of a game session
type GameStatus string

const (
	// GameStatusWaiting indicates no question is active
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusInProgress indicates a question was issued and is awaiting resolution
	GameStatusInProgress GameStatus = "in_progress"
)

// IsWaiting returns true if no question is active
func (s GameStatus) IsWaiting() bool {
	return s == GameStatusWaiting
}

// IsInProgress returns true if a question is awaiting resolution
func (s GameStatus) IsInProgress() bool {
	return s == GameStatusInProgress
}

// TurnContext is the current task/word/player assignment of a game
type TurnContext struct {
	// TaskID is the catalog id of the assigned task
	TaskID int

	// Task is the task description
	Task string

	// TimeLimit is the time the guessers have once the question is issued
	TimeLimit time.Duration

	// Points is the value credited when the word is guessed
	Points int

	// PlayerID is the ID of the player describing the word
	PlayerID string

	// PlayerName is the display name of that player
	PlayerName string

	// Word is the secret word, only ever sent privately to the player
	Word string

	// Theme is the theme the word was drawn from
	Theme string
}
