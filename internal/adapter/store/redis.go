package store

import (
	"context"
	"fmt"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	"github.com/redis/go-redis/v9"
)

// RedisHasher is the subset of redis client used by RedisStore.
//go:generate mockgen -destination mock/redis.go -package mock github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/adapter/store RedisHasher
type RedisHasher interface {
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisStore keeps user documents as redis hashes. Nested fields are stored
// with dotted names, so HSET merges them field by field.
type RedisStore struct {
	rdb    RedisHasher
	prefix string
}

var _ app.Store = &RedisStore{}

// NewRedisStore creates new RedisStore instance.
func NewRedisStore(rdb RedisHasher, prefix string) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		prefix: prefix,
	}
}

// MergeUser merges user record into hash stored under user id.
func (s *RedisStore) MergeUser(ctx context.Context, userID string, rec app.UserRecord) error {
	fields := flattenDocument(userDocument(rec))
	if err := s.rdb.HSet(ctx, s.prefix+userID, fields).Err(); err != nil {
		return fmt.Errorf("writing redis hash: %w", err)
	}
	return nil
}
