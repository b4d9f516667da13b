package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArijitMandal123/Hackathon-Proj-sbh/internal/app"
	lru "github.com/hashicorp/golang-lru"
)

// CachedClient wraps github client with caching layer.
// Errors are never cached.
type CachedClient struct {
	client       app.GithubClient
	usersCache   *lru.Cache
	reposCache   *lru.Cache
	commitsCache *lru.Cache
	readmeCache  *lru.Cache
	ttl          time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}

	c := CachedClient{
		client: client,
		ttl:    ttl,
	}
	for name, cache := range map[string]**lru.Cache{
		"users":   &c.usersCache,
		"repos":   &c.reposCache,
		"commits": &c.commitsCache,
		"readme":  &c.readmeCache,
	} {
		lc, err := lru.New(size)
		if err != nil {
			return nil, fmt.Errorf("creating lru cache for %s: %w", name, err)
		}
		*cache = lc
	}

	return &c, nil
}

// User returns account data of given github user.
func (c *CachedClient) User(ctx context.Context, username string) (*app.AccountData, error) {
	return cached(c, c.usersCache, username, func() (*app.AccountData, error) {
		return c.client.User(ctx, username)
	})
}

// Repositories returns public repositories of given github user.
func (c *CachedClient) Repositories(ctx context.Context, username string) ([]app.Repository, error) {
	return cached(c, c.reposCache, username, func() ([]app.Repository, error) {
		return c.client.Repositories(ctx, username)
	})
}

// CommitCount returns number of commits listed for given repository.
func (c *CachedClient) CommitCount(ctx context.Context, fullName string) (int, error) {
	return cached(c, c.commitsCache, fullName, func() (int, error) {
		return c.client.CommitCount(ctx, fullName)
	})
}

// Readme returns README content of given repository.
func (c *CachedClient) Readme(ctx context.Context, fullName string) (string, error) {
	return cached(c, c.readmeCache, fullName, func() (string, error) {
		return c.client.Readme(ctx, fullName)
	})
}

func cached[T any](c *CachedClient, cache *lru.Cache, key string, fetch func() (T, error)) (T, error) {
	val, ok := cache.Get(key)
	if ok {
		entry := val.(cacheEntry)
		if entry.created.Add(c.ttl).After(time.Now()) {
			return entry.data.(T), nil
		}
	}

	data, err := fetch()
	if err != nil {
		return data, err
	}

	cache.Add(key, cacheEntry{
		created: time.Now(),
		data:    data,
	})

	return data, nil
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}
