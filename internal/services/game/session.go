package game

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/charades/internal/common/random"
	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/tasks"
)

// Session is one running game in one channel. Every exported method is a
// single critical section, so a session can be driven from several
// goroutines (command handlers and countdowns) without advancing twice.
type Session struct {
	mu sync.Mutex

	id        string
	channelID string
	startedAt time.Time

	catalog *tasks.Catalog
	random  random.Random

	// roster in join order, plus the indexes kept in step with it
	order   []string
	players map[string]*models.Player
	handles map[string]string
	scores  map[string]int

	status models.GameStatus

	// pools holds the words left per task id; eligible lists the ids with words left
	pools    map[int][]models.WordEntry
	eligible []int

	turn *models.TurnContext
	// spent is set once the turn's question is resolved; its word is never issued again
	spent bool
	cycle turnCycle
	turns int

	// question counts issued questions; the live one carries this number
	question int
}

// NewSession creates an empty session in the waiting state
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.Bank == nil {
		return nil, ErrNilBank
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	pools := cfg.Bank.Clone()
	eligible := make([]int, 0, len(pools))
	for _, id := range cfg.Catalog.IDs() {
		if len(pools[id]) > 0 {
			eligible = append(eligible, id)
		}
	}

	return &Session{
		id:        cfg.ID,
		channelID: cfg.ChannelID,
		startedAt: cfg.StartedAt,
		catalog:   cfg.Catalog,
		random:    cfg.Random,
		players:   make(map[string]*models.Player),
		handles:   make(map[string]string),
		scores:    make(map[string]int),
		status:    models.GameStatusWaiting,
		pools:     pools,
		eligible:  eligible,
	}, nil
}

// ID returns the game ID
func (s *Session) ID() string {
	return s.id
}

// ChannelID returns the channel the game is played in
func (s *Session) ChannelID() string {
	return s.channelID
}

// Status returns the current state of the session
func (s *Session) Status() models.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// PlayerCount returns the roster size
func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// HasPlayer reports whether the player is on the roster
func (s *Session) HasPlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.players[playerID]
	return ok
}

// IsActivePlayer reports whether the player holds the current turn
func (s *Session) IsActivePlayer(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn != nil && !s.spent && s.turn.PlayerID == playerID
}

// WordsLeft returns the number of words that can still be dealt
func (s *Session) WordsLeft() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	left := 0
	for _, id := range s.eligible {
		left += len(s.pools[id])
	}
	return left
}

// Join adds a player to the roster with a score of zero
func (s *Session) Join(input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	name := displayName(input.Name, input.Handle)

	if _, ok := s.players[input.PlayerID]; ok {
		return &JoinOutput{
			AlreadyJoined: true,
			PlayerCount:   len(s.order),
			Message:       fmt.Sprintf("%s is already in the game", name),
		}, nil
	}

	handle := normalizeHandle(input.Handle)
	s.players[input.PlayerID] = &models.Player{
		ID:     input.PlayerID,
		Handle: handle,
		Name:   name,
	}
	s.order = append(s.order, input.PlayerID)
	s.scores[input.PlayerID] = 0
	if handle != "" {
		s.handles[handle] = input.PlayerID
	}

	return &JoinOutput{
		PlayerCount: len(s.order),
		Message:     fmt.Sprintf("%s joined the game", name),
	}, nil
}

// Leave removes a player from the roster. If the player held the pending
// turn, the next turn is dealt and described in the message.
func (s *Session) Leave(input *LeaveInput) (*LeaveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[input.PlayerID]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if len(s.order) <= DefaultMinPlayers {
		return nil, ErrInsufficientRoster
	}

	heldTurn := s.turn != nil && !s.spent && s.turn.PlayerID == input.PlayerID
	if heldTurn && s.status.IsInProgress() {
		return nil, ErrActivePlayerLocked
	}

	s.removePlayer(player)

	output := &LeaveOutput{
		Message: fmt.Sprintf("%s left the game", player.Name),
	}
	if !heldTurn {
		return output, nil
	}

	next, err := s.startTurn()
	if err != nil {
		// the old turn names a player who is gone
		s.turn = nil
		output.ContentExhausted = errors.Is(err, ErrContentExhausted)
		output.Message += "\n\n" + err.Error()
		return output, nil
	}

	output.NextTurn = next
	output.Message += "\n\n" + formatTurn(next)
	return output, nil
}

// removePlayer drops the player from the roster, the handle index and the score table
func (s *Session) removePlayer(player *models.Player) {
	for i, id := range s.order {
		if id == player.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			s.cycle.removed(i)
			break
		}
	}
	delete(s.players, player.ID)
	delete(s.scores, player.ID)
	if player.Handle != "" && s.handles[player.Handle] == player.ID {
		delete(s.handles, player.Handle)
	}
}

// StartTurn deals a random task and word to the next player. The status is
// not changed; the question only becomes active with IssueQuestion.
func (s *Session) StartTurn() (*StartTurnOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsInProgress() {
		return nil, ErrQuestionAlreadyActive
	}

	turn, err := s.startTurn()
	if err != nil {
		return nil, err
	}

	return &StartTurnOutput{
		Turn:    turn,
		Message: formatTurn(turn),
	}, nil
}

func (s *Session) startTurn() (*models.TurnContext, error) {
	if len(s.eligible) == 0 {
		return nil, ErrContentExhausted
	}
	if len(s.order) == 0 {
		return nil, ErrNoPlayers
	}

	slot := s.random.Intn(len(s.eligible))
	taskID := s.eligible[slot]
	task, _ := s.catalog.Get(taskID)

	pool := s.pools[taskID]
	pick := s.random.Intn(len(pool))
	entry := pool[pick]

	playerID, _ := s.cycle.next(s.order)
	player := s.players[playerID]

	s.turn = &models.TurnContext{
		TaskID:     taskID,
		Task:       task.Description,
		TimeLimit:  task.TimeLimit,
		Points:     task.Points,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Word:       entry.Word,
		Theme:      entry.Theme,
	}
	s.spent = false
	s.turns++

	// a dealt word never comes back
	s.pools[taskID] = append(pool[:pick], pool[pick+1:]...)
	if len(s.pools[taskID]) == 0 {
		delete(s.pools, taskID)
		s.eligible = append(s.eligible[:slot], s.eligible[slot+1:]...)
	}

	turn := *s.turn
	return &turn, nil
}

// CurrentTurn describes the pending or active turn. A turn whose question
// was resolved is no longer current.
func (s *Session) CurrentTurn() (*CurrentTurnOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.turn == nil || s.spent {
		return nil, ErrNoTurnAssigned
	}

	turn := *s.turn
	return &CurrentTurnOutput{
		Turn:    &turn,
		Status:  s.status,
		Message: formatTurn(&turn),
	}, nil
}

// IssueQuestion activates the pending turn. At most one question is active
// at a time; a second call before resolution is rejected, and a resolved turn
// cannot be issued again until StartTurn deals a new one.
func (s *Session) IssueQuestion() (*IssueQuestionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsInProgress() {
		return nil, ErrQuestionAlreadyActive
	}
	if s.turn == nil || s.spent {
		return nil, ErrNoTurnAssigned
	}
	if _, ok := s.players[s.turn.PlayerID]; !ok {
		return nil, ErrNoTurnAssigned
	}

	s.status = models.GameStatusInProgress
	s.question++

	return &IssueQuestionOutput{
		Question:   s.question,
		PlayerID:   s.turn.PlayerID,
		PlayerName: s.turn.PlayerName,
		Word:       s.turn.Word,
		TimeLimit:  s.turn.TimeLimit,
	}, nil
}

// CancelQuestion resolves the active question without scoring. Without an
// active question nothing changes: the output reports Resolved false along
// with ErrNoActiveQuestion.
func (s *Session) CancelQuestion() (*CancelQuestionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsWaiting() {
		return &CancelQuestionOutput{
			Resolved: false,
			Message:  ErrNoActiveQuestion.Error(),
		}, ErrNoActiveQuestion
	}

	s.status = models.GameStatusWaiting
	s.spent = true

	return &CancelQuestionOutput{
		Resolved: true,
		Message:  "Question skipped!",
	}, nil
}

// QuestionOpen reports whether the numbered question is still unresolved
func (s *Session) QuestionOpen(question int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status.IsInProgress() && s.question == question
}

// ExpireQuestion cancels the numbered question if it is still unresolved.
// A question that was answered, skipped or replaced yields ErrNoActiveQuestion.
func (s *Session) ExpireQuestion(question int) (*CancelQuestionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsWaiting() || s.question != question {
		return nil, ErrNoActiveQuestion
	}

	s.status = models.GameStatusWaiting
	s.spent = true

	return &CancelQuestionOutput{
		Resolved: true,
		Message:  "Question skipped!",
	}, nil
}

// MarkAnswered resolves the active question as guessed and credits the
// active player with the task's points
func (s *Session) MarkAnswered() (*MarkAnsweredOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsWaiting() {
		return nil, ErrNoActiveQuestion
	}

	s.status = models.GameStatusWaiting
	s.spent = true
	s.scores[s.turn.PlayerID] += s.turn.Points

	return &MarkAnsweredOutput{
		PlayerID: s.turn.PlayerID,
		Points:   s.turn.Points,
		Score:    s.scores[s.turn.PlayerID],
		Message:  fmt.Sprintf("Question guessed! %s earns %s.", s.turn.PlayerName, pluralPoints(s.turn.Points)),
	}, nil
}

// AddPoint is the admin override. By handle it adds exactly one point; by
// player ID it adds the value of the current task (one if nothing was dealt yet).
func (s *Session) AddPoint(input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input == nil {
		return nil, ErrUnknownPlayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, ok := s.resolve(input.Identifier, input.ByHandle)
	if !ok {
		return nil, ErrUnknownPlayer
	}

	points := 1
	if !input.ByHandle && s.turn != nil {
		points = s.turn.Points
	}
	s.scores[playerID] += points

	return &AdjustScoreOutput{
		PlayerID: playerID,
		Score:    s.scores[playerID],
	}, nil
}

// RemovePoint takes one point away. Scores never go below zero.
func (s *Session) RemovePoint(input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input == nil {
		return nil, ErrUnknownPlayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	playerID, ok := s.resolve(input.Identifier, input.ByHandle)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if s.scores[playerID] == 0 {
		return nil, ErrScoreFloor
	}
	s.scores[playerID]--

	return &AdjustScoreOutput{
		PlayerID: playerID,
		Score:    s.scores[playerID],
	}, nil
}

func (s *Session) resolve(identifier string, byHandle bool) (string, bool) {
	if byHandle {
		playerID, ok := s.handles[normalizeHandle(identifier)]
		return playerID, ok
	}
	_, ok := s.players[identifier]
	return identifier, ok
}

// Standings returns every player's score in roster order
func (s *Session) Standings() *GetLeaderboardOutput {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := &models.Leaderboard{
		GameID:  s.id,
		Entries: s.standings(),
	}

	return &GetLeaderboardOutput{
		Leaderboard: board,
		Message:     formatStandings(board.Entries),
	}
}

func (s *Session) standings() []*models.Standing {
	entries := make([]*models.Standing, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, &models.Standing{
			PlayerID:   id,
			PlayerName: s.players[id].Name,
			Score:      s.scores[id],
		})
	}
	return entries
}

// Result summarises the game for the archive
func (s *Session) Result(finishedAt time.Time) *models.GameResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.GameResult{
		ID:         s.id,
		ChannelID:  s.channelID,
		StartedAt:  s.startedAt,
		FinishedAt: finishedAt,
		Turns:      s.turns,
		Standings:  s.standings(),
	}
}

func formatTurn(turn *models.TurnContext) string {
	return fmt.Sprintf(
		"**Player**: %s\n**Task**: %s\n**Time**: %d seconds\n**Theme**: %s",
		turn.PlayerName, turn.Task, int(turn.TimeLimit.Seconds()), turn.Theme,
	)
}

func formatStandings(entries []*models.Standing) string {
	var b strings.Builder
	b.WriteString("Standings:")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s  ----  %d", e.PlayerName, e.Score)
	}
	return b.String()
}

func pluralPoints(n int) string {
	if n == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%d points", n)
}

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

func displayName(name, handle string) string {
	if name != "" {
		return name
	}
	if handle != "" {
		return handle
	}
	return "Unknown player"
}
