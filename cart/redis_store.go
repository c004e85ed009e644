package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 24 * time.Hour

// RedisStore keeps each session's cart as a JSON blob under cart:<session>.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (map[string]Line, error) {
	raw, err := s.rdb.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return map[string]Line{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}

	var lines map[string]Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", sessionID, err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, lines map[string]Line) error {
	blob, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", sessionID, err)
	}
	if err := s.rdb.Set(ctx, cartKey(sessionID), blob, cartTTL).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Drop(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("drop cart %s: %w", sessionID, err)
	}
	return nil
}
