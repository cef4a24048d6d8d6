package models

import (
	"time"
)

// Task is a constraint on how the active player must convey their word
type Task struct {
	// ID is the fixed catalog identifier of the task
	ID int

	// Description tells the player what they are allowed to do
	Description string

	// TimeLimit is how long the other players have to guess
	TimeLimit time.Duration

	// Points is what the player earns when the word is guessed
	Points int
}

// WordEntry is a single word from the word bank together with its theme
type WordEntry struct {
	Theme string
	Word  string
}
