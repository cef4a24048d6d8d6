package game

// turnCycle hands out turns round-robin over a roster that can change
// between calls. The cursor is the roster index of the next player; it is
// checked against the live roster on every call.
type turnCycle struct {
	cursor int
}

// next returns the player whose turn is next, or false if the roster is empty
func (c *turnCycle) next(roster []string) (string, bool) {
	if len(roster) == 0 {
		return "", false
	}
	if c.cursor < 0 || c.cursor >= len(roster) {
		c.cursor = 0
	}

	playerID := roster[c.cursor]
	c.cursor++

	return playerID, true
}

// removed must be called after the player at index was deleted from the roster.
// Players behind the cursor shift left, so the cursor follows them.
func (c *turnCycle) removed(index int) {
	if index < c.cursor {
		c.cursor--
	}
}
