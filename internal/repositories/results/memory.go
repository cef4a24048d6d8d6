package results

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/charades/internal/models"
)

// memoryRepository keeps results in process memory. It is used when no
// Redis is configured, so the archive lasts as long as the bot runs.
type memoryRepository struct {
	mu         sync.RWMutex
	results    map[string]*models.GameResult
	byChannel  map[string][]string
	hallOfFame map[string]map[string]*models.HallOfFameEntry
}

// NewMemory creates an in-memory results repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		results:    make(map[string]*models.GameResult),
		byChannel:  make(map[string][]string),
		hallOfFame: make(map[string]map[string]*models.HallOfFameEntry),
	}
}

// SaveResult archives a finished game
func (m *memoryRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}
	result := input.Result

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.results[result.ID]; ok {
		return ErrResultAlreadyExists
	}

	m.results[result.ID] = copyResult(result)
	m.byChannel[result.ChannelID] = append(m.byChannel[result.ChannelID], result.ID)

	hall, ok := m.hallOfFame[result.ChannelID]
	if !ok {
		hall = make(map[string]*models.HallOfFameEntry)
		m.hallOfFame[result.ChannelID] = hall
	}
	for _, standing := range result.Standings {
		entry, ok := hall[standing.PlayerID]
		if !ok {
			entry = &models.HallOfFameEntry{PlayerID: standing.PlayerID}
			hall[standing.PlayerID] = entry
		}
		entry.PlayerName = standing.PlayerName
		entry.TotalScore += standing.Score
		entry.GamesPlayed++
	}

	return nil
}

// GetResult retrieves an archived game by ID
func (m *memoryRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result, ok := m.results[input.GameID]
	if !ok {
		return nil, ErrResultNotFound
	}
	return copyResult(result), nil
}

// ListChannelResults retrieves the archived games of a channel, most recent first
func (m *memoryRepository) ListChannelResults(ctx context.Context, input *ListChannelResultsInput) (*ListChannelResultsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]*models.GameResult, 0, len(m.byChannel[input.ChannelID]))
	for _, id := range m.byChannel[input.ChannelID] {
		results = append(results, copyResult(m.results[id]))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinishedAt.After(results[j].FinishedAt)
	})
	if input.Limit > 0 && len(results) > input.Limit {
		results = results[:input.Limit]
	}

	return &ListChannelResultsOutput{
		Results: results,
	}, nil
}

// GetHallOfFame retrieves the all-time scores of a channel, best first
func (m *memoryRepository) GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]*models.HallOfFameEntry, 0, len(m.hallOfFame[input.ChannelID]))
	for _, entry := range m.hallOfFame[input.ChannelID] {
		e := *entry
		entries = append(entries, &e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].PlayerID > entries[j].PlayerID
	})
	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetHallOfFameOutput{
		Entries: entries,
	}, nil
}

func copyResult(result *models.GameResult) *models.GameResult {
	c := *result
	c.Standings = make([]*models.Standing, 0, len(result.Standings))
	for _, s := range result.Standings {
		standing := *s
		c.Standings = append(c.Standings, &standing)
	}
	return &c
}
