package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"actor-catalog/pkg/cache"
)

// cachedClient is a read-through cache in front of a Client.
// Cache failures are logged and the provider is called as if it were a miss.
type cachedClient struct {
	next     Client
	cache    cache.Cache
	ttl      time.Duration
	language string
}

// NewCachedClient wraps next with a response cache. language is part of every key.
func NewCachedClient(next Client, c cache.Cache, ttl time.Duration, language string) Client {
	return &cachedClient{next: next, cache: c, ttl: ttl, language: language}
}

func (c *cachedClient) SearchPeople(ctx context.Context, query string, page int) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}
	key := fmt.Sprintf("tmdb:search:%s:%d:%s", c.language, page, strings.ToLower(strings.TrimSpace(query)))

	var cached json.RawMessage
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	result, err := c.next.SearchPeople(ctx, query, page)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, result)
	return result, nil
}

func (c *cachedClient) GetPersonDetails(ctx context.Context, externalID int64) (*Person, error) {
	key := fmt.Sprintf("tmdb:person:%s:%d", c.language, externalID)

	var cached Person
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	p, err := c.next.GetPersonDetails(ctx, externalID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, p)
	return p, nil
}

func (c *cachedClient) lookup(ctx context.Context, key string, dest interface{}) bool {
	found, err := c.cache.Get(ctx, key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[TMDB] cache read failed")
		return false
	}
	return found
}

func (c *cachedClient) store(ctx context.Context, key string, value interface{}) {
	if err := c.cache.Set(ctx, key, value, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[TMDB] cache write failed")
	}
}
