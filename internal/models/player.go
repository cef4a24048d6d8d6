package models

// Player represents a member of a game's roster
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Handle is the player's public username, used by admins to adjust scores.
	// It may be empty when the user has none.
	Handle string

	// Name is the display name shown in turn summaries and standings
	Name string
}
