package cache

import (
	"context"
	"errors"
	"time"
)

// ErrDisabled is returned by Noop so callers can tell "not configured" from a miss.
var ErrDisabled = errors.New("cache disabled")

// Cache is the contract for the response cache.
type Cache interface {
	// Get unmarshals the stored value into dest.
	// found is false on a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}

// Noop never stores anything. Used when no cache backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error                       { return nil }
func (Noop) Ping(context.Context) error                                    { return ErrDisabled }
