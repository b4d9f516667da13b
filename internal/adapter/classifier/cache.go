package classifier

import (
	"context"
	"crypto/sha256"
	"errors"
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	lru "github.com/hashicorp/golang-lru"
)

// CachedModel wraps a model with lru cache keyed by hash of the prepared input.
// Errors are never cached.
type CachedModel struct {
	model app.DifficultyModel
	cache *lru.Cache
	ttl   time.Duration
}

var _ app.DifficultyModel = &CachedModel{}

// NewCachedModel creates new CachedModel instance.
func NewCachedModel(model app.DifficultyModel, size int, ttl time.Duration) (*CachedModel, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &CachedModel{
		model: model,
		cache: cache,
		ttl:   ttl,
	}, nil
}

// Predict returns cached label for the same input if possible.
func (c *CachedModel) Predict(ctx context.Context, text string) (app.Difficulty, error) {
	key := sha256.Sum256([]byte(PrepareText(text)))

	if val, ok := c.cache.Get(key); ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.label, nil
		}
	}

	label, err := c.model.Predict(ctx, text)
	if err != nil {
		return label, err
	}

	c.cache.Add(key, cacheEntry{
		created: time.Now(),
		label:   label,
	})

	return label, nil
}

type cacheEntry struct {
	created time.Time
	label   app.Difficulty
}
