package league

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	defaultKeyPrefix = "league:"
	indexKeyPrefix   = "index:"
)

// Config holds configuration for the Redis league repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix is prepended to every league path, defaults to "league:"
	KeyPrefix string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis creates a new Redis-backed league repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	return &redisRepository{
		client:    cfg.RedisClient,
		keyPrefix: keyPrefix,
	}, nil
}

// SaveLeague stores the rows as JSON under the path key
func (r *redisRepository) SaveLeague(ctx context.Context, input *SaveLeagueInput) error {
	if input == nil || input.Path == "" {
		return errors.New("input and path cannot be empty")
	}

	data, err := encodeRows(input.Rows)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(input.Path), data, 0) // No expiration
	pipe.SAdd(ctx, r.indexKey(), input.Path)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save league: %w", err)
	}

	return nil
}

// LoadLeague reads the rows stored under the path key
func (r *redisRepository) LoadLeague(ctx context.Context, input *LoadLeagueInput) (*LoadLeagueOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.New("input and path cannot be empty")
	}

	data, err := r.client.Get(ctx, r.key(input.Path)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, input.Path)
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}

	return &LoadLeagueOutput{
		Rows: rows,
	}, nil
}

// ListLeagues returns every saved path in sorted order
func (r *redisRepository) ListLeagues(ctx context.Context, input *ListLeaguesInput) (*ListLeaguesOutput, error) {
	paths, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	sort.Strings(paths)

	return &ListLeaguesOutput{
		Paths: paths,
	}, nil
}

func (r *redisRepository) key(path string) string {
	return fmt.Sprintf("%s%s", r.keyPrefix, path)
}

func (r *redisRepository) indexKey() string {
	return fmt.Sprintf("%s%s", indexKeyPrefix, r.keyPrefix)
}
