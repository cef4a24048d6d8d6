package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/charades/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix         = "result:"
	channelResultsKeyPrefix = "channel_results:"
	hallOfFameKeyPrefix     = "hall_of_fame:"
	gamesPlayedKeyPrefix    = "games_played:"
	playerNamesKeyPrefix    = "player_names:"
)

// Config holds configuration for the Redis results repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed results repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult archives a finished game
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}
	result := input.Result

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	// Claim the ID first so a game can never be counted twice in the hall of fame
	created, err := r.client.SetNX(ctx, resultKeyPrefix+result.ID, resultJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if !created {
		return ErrResultAlreadyExists
	}

	pipe := r.client.TxPipeline()

	pipe.ZAdd(ctx, channelResultsKeyPrefix+result.ChannelID, redis.Z{
		Score:  float64(result.FinishedAt.UnixNano()),
		Member: result.ID,
	})

	hallKey := hallOfFameKeyPrefix + result.ChannelID
	gamesKey := gamesPlayedKeyPrefix + result.ChannelID
	namesKey := playerNamesKeyPrefix + result.ChannelID
	for _, standing := range result.Standings {
		pipe.ZIncrBy(ctx, hallKey, float64(standing.Score), standing.PlayerID)
		pipe.HIncrBy(ctx, gamesKey, standing.PlayerID, 1)
		pipe.HSet(ctx, namesKey, standing.PlayerID, standing.PlayerName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to index result: %w", err)
	}

	return nil
}

// GetResult retrieves an archived game by ID
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+input.GameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// ListChannelResults retrieves the archived games of a channel, most recent first
func (r *redisRepository) ListChannelResults(ctx context.Context, input *ListChannelResultsInput) (*ListChannelResultsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	gameIDs, err := r.client.ZRevRange(ctx, channelResultsKeyPrefix+input.ChannelID, 0, stop(input.Limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		result, err := r.GetResult(ctx, &GetResultInput{GameID: gameID})
		if err != nil {
			if errors.Is(err, ErrResultNotFound) {
				// Index points at a deleted result, skip it
				continue
			}
			return nil, err
		}
		results = append(results, result)
	}

	return &ListChannelResultsOutput{
		Results: results,
	}, nil
}

// GetHallOfFame retrieves the all-time scores of a channel, best first
func (r *redisRepository) GetHallOfFame(ctx context.Context, input *GetHallOfFameInput) (*GetHallOfFameOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, hallOfFameKeyPrefix+input.ChannelID, 0, stop(input.Limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get hall of fame: %w", err)
	}
	if len(scores) == 0 {
		return &GetHallOfFameOutput{Entries: []*models.HallOfFameEntry{}}, nil
	}

	playerIDs := make([]string, 0, len(scores))
	for _, z := range scores {
		playerIDs = append(playerIDs, z.Member.(string))
	}

	names, err := r.client.HMGet(ctx, playerNamesKeyPrefix+input.ChannelID, playerIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}
	games, err := r.client.HMGet(ctx, gamesPlayedKeyPrefix+input.ChannelID, playerIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get games played: %w", err)
	}

	entries := make([]*models.HallOfFameEntry, 0, len(scores))
	for i, z := range scores {
		entry := &models.HallOfFameEntry{
			PlayerID:   playerIDs[i],
			PlayerName: "Unknown Player",
			TotalScore: int(z.Score),
		}
		if name, ok := names[i].(string); ok {
			entry.PlayerName = name
		}
		if played, ok := games[i].(string); ok {
			entry.GamesPlayed, _ = strconv.Atoi(played)
		}
		entries = append(entries, entry)
	}

	return &GetHallOfFameOutput{
		Entries: entries,
	}, nil
}

// stop converts a limit into the inclusive stop index of a range query
func stop(limit int) int64 {
	if limit <= 0 {
		return -1
	}
	return int64(limit - 1)
}
