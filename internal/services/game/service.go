package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/charades/internal/common/clock"
	"github.com/KirkDiggler/charades/internal/common/random"
	"github.com/KirkDiggler/charades/internal/common/uuid"
	"github.com/KirkDiggler/charades/internal/models"
	"github.com/KirkDiggler/charades/internal/repositories/results"
	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/KirkDiggler/charades/internal/wordbank"
)

const (
	defaultHallOfFameLimit = 10
	defaultHistoryLimit    = 5

	historyTimeFormat = "2006-01-02 15:04 MST"
)

// service implements the Service interface
type service struct {
	minPlayers    int
	catalog       *tasks.Catalog
	wordLoader    wordbank.Loader
	resultsRepo   results.Repository
	random        random.Random
	clock         clock.Clock
	uuidGenerator uuid.UUID

	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.WordLoader == nil {
		return nil, ErrNilWordLoader
	}
	if cfg.ResultsRepo == nil {
		return nil, ErrNilResultsRepo
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	minPlayers := cfg.MinPlayers
	if minPlayers < DefaultMinPlayers {
		minPlayers = DefaultMinPlayers
	}

	return &service{
		minPlayers:    minPlayers,
		catalog:       cfg.Catalog,
		wordLoader:    cfg.WordLoader,
		resultsRepo:   cfg.ResultsRepo,
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		sessions:      make(map[string]*Session),
	}, nil
}

// CreateGame starts a new game in a channel with a freshly loaded word bank
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	// Check before loading so a busy channel does not pay for a load
	if _, err := s.session(input.ChannelID); err == nil {
		return nil, ErrGameAlreadyExists
	}

	bank, err := s.wordLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load word bank: %w", err)
	}

	session, err := NewSession(&SessionConfig{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		Catalog:   s.catalog,
		Bank:      bank,
		Random:    s.random,
		StartedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[input.ChannelID]; ok {
		return nil, ErrGameAlreadyExists
	}
	s.sessions[input.ChannelID] = session

	return &CreateGameOutput{
		GameID: session.ID(),
		Words:  session.WordsLeft(),
	}, nil
}

// GetGame returns the session running in a channel
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Session: session,
	}, nil
}

// EndGame archives the game's result and discards the session. The session
// is discarded even when archiving fails; the error is still returned.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	s.mu.Lock()
	session, ok := s.sessions[input.ChannelID]
	if ok {
		delete(s.sessions, input.ChannelID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrGameNotFound
	}

	result := session.Result(s.clock.Now())
	output := &EndGameOutput{
		Result:  result,
		Message: session.Standings().Message,
	}

	err := s.resultsRepo.SaveResult(ctx, &results.SaveResultInput{
		Result: result,
	})
	if err != nil {
		return output, fmt.Errorf("failed to archive game: %w", err)
	}

	return output, nil
}

// Join adds a player to the game
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.Join(input)
}

// Leave removes a player from the game
func (s *service) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil {
		return nil, ErrEmptyPlayerID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.Leave(input)
}

// StartTurn deals the next task and word
func (s *service) StartTurn(ctx context.Context, input *StartTurnInput) (*StartTurnOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.StartTurn()
}

// CurrentTurn describes the pending turn
func (s *service) CurrentTurn(ctx context.Context, input *CurrentTurnInput) (*CurrentTurnOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.CurrentTurn()
}

// IssueQuestion activates the pending turn once the roster is large enough
func (s *service) IssueQuestion(ctx context.Context, input *IssueQuestionInput) (*IssueQuestionOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	if session.PlayerCount() < s.minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	return session.IssueQuestion()
}

// QuestionOpen reports whether an issued question is still unresolved.
// A game that has ended has no open question.
func (s *service) QuestionOpen(ctx context.Context, input *QuestionOpenInput) (bool, error) {
	if input == nil {
		return false, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return false, nil
		}
		return false, err
	}

	return session.QuestionOpen(input.Question), nil
}

// CancelQuestion resolves the active question without scoring
func (s *service) CancelQuestion(ctx context.Context, input *CancelQuestionInput) (*CancelQuestionOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.CancelQuestion()
}

// ExpireQuestion cancels an issued question whose time ran out
func (s *service) ExpireQuestion(ctx context.Context, input *ExpireQuestionInput) (*CancelQuestionOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.ExpireQuestion(input.Question)
}

// MarkAnswered resolves the active question as guessed
func (s *service) MarkAnswered(ctx context.Context, input *MarkAnsweredInput) (*MarkAnsweredOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.MarkAnswered()
}

// AddPoint adds points to a player
func (s *service) AddPoint(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input == nil {
		return nil, ErrUnknownPlayer
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.AddPoint(input)
}

// RemovePoint removes a point from a player
func (s *service) RemovePoint(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input == nil {
		return nil, ErrUnknownPlayer
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.RemovePoint(input)
}

// GetLeaderboard returns the current standings of the game
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrEmptyChannelID
	}

	session, err := s.session(input.ChannelID)
	if err != nil {
		return nil, err
	}

	return session.Standings(), nil
}

// GetHallOfFame returns the all-time scores of a channel
func (s *service) GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHallOfFameLimit
	}

	hall, err := s.resultsRepo.GetHallOfFame(ctx, &results.GetHallOfFameInput{
		ChannelID: input.ChannelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get hall of fame: %w", err)
	}

	var b strings.Builder
	b.WriteString("Hall of fame:")
	if len(hall.Entries) == 0 {
		b.WriteString("\nNo finished games yet.")
	}
	for i, entry := range hall.Entries {
		fmt.Fprintf(&b, "\n%d. %s  ----  %d (%s)", i+1, entry.PlayerName, entry.TotalScore, pluralGames(entry.GamesPlayed))
	}

	return &GetHallOfFameOutput{
		Entries: hall.Entries,
		Message: b.String(),
	}, nil
}

// ListResults returns the most recently finished games of a channel
func (s *service) ListResults(ctx context.Context, input *ListResultsInput) (*ListResultsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	list, err := s.resultsRepo.ListChannelResults(ctx, &results.ListChannelResultsInput{
		ChannelID: input.ChannelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	var b strings.Builder
	b.WriteString("Recent games:")
	if len(list.Results) == 0 {
		b.WriteString("\nNo finished games yet.")
	}
	for _, result := range list.Results {
		fmt.Fprintf(&b, "\n`%s` %s, %s: %s",
			result.ID,
			result.FinishedAt.Format(historyTimeFormat),
			pluralTurns(result.Turns),
			formatScores(result.Standings),
		)
	}

	return &ListResultsOutput{
		Results: list.Results,
		Message: b.String(),
	}, nil
}

// GetResult returns one finished game of a channel
func (s *service) GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, ErrEmptyChannelID
	}
	if input.GameID == "" {
		return nil, ErrResultNotFound
	}

	result, err := s.resultsRepo.GetResult(ctx, &results.GetResultInput{GameID: input.GameID})
	if err != nil {
		if errors.Is(err, results.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	// games of other channels stay private to them
	if result.ChannelID != input.ChannelID {
		return nil, ErrResultNotFound
	}

	message := fmt.Sprintf("Game `%s`\nPlayed %s to %s, %s\n%s",
		result.ID,
		result.StartedAt.Format(historyTimeFormat),
		result.FinishedAt.Format(historyTimeFormat),
		pluralTurns(result.Turns),
		formatStandings(result.Standings),
	)

	return &GetResultOutput{
		Result:  result,
		Message: message,
	}, nil
}

// session looks up the game of a channel
func (s *service) session(channelID string) (*Session, error) {
	if channelID == "" {
		return nil, ErrEmptyChannelID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[channelID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func pluralTurns(n int) string {
	if n == 1 {
		return "1 turn"
	}
	return fmt.Sprintf("%d turns", n)
}

// formatScores lists the scores on one line, best first
func formatScores(entries []*models.Standing) string {
	sorted := append([]*models.Standing(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	parts := make([]string, 0, len(sorted))
	for _, e := range sorted {
		parts = append(parts, fmt.Sprintf("%s %d", e.PlayerName, e.Score))
	}
	if len(parts) == 0 {
		return "no players"
	}
	return strings.Join(parts, ", ")
}

func pluralGames(n int) string {
	if n == 1 {
		return "1 game"
	}
	return fmt.Sprintf("%d games", n)
}
