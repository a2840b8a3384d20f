package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Redis when TEST_REDIS_ADDR is set.
func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	rc := NewRedisClient(addr, os.Getenv("TEST_REDIS_PASSWORD"), 0)
	require.NoError(t, rc.Connect(ctx))
	t.Cleanup(func() { _ = rc.Close() })

	c := NewRedisCache(rc.Client, "test:"+uuid.NewString()+":")
	require.NoError(t, c.Ping(ctx))

	type person struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	var got person
	found, err := c.Get(ctx, "person:31", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "person:31", person{ID: 31, Name: "Tom Hanks"}, time.Minute))

	found, err = c.Get(ctx, "person:31", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, person{ID: 31, Name: "Tom Hanks"}, got)

	require.NoError(t, c.Delete(ctx, "person:31"))
	found, err = c.Get(ctx, "person:31", &got)
	require.NoError(t, err)
	assert.False(t, found)

}
