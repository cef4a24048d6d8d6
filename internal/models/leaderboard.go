package models

// Standing is one player's line in a leaderboard
type Standing struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the player's current number of points
	Score int
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	// GameID is the unique identifier for the game
	GameID string

	// Entries are in roster order
	Entries []*Standing
}

// HallOfFameEntry is a player's accumulated record across finished games in a channel
type HallOfFameEntry struct {
	PlayerID    string
	PlayerName  string
	TotalScore  int
	GamesPlayed int
}
