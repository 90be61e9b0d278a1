package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "refresh:leandro", "token-1", time.Minute))

	var got string
	found, err := c.Get(ctx, "refresh:leandro", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-1", got)

	now = now.Add(2 * time.Minute)
	found, err = c.Get(ctx, "refresh:leandro", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", 1, 0))
	exists, _ := c.Exists(ctx, "k")
	assert.True(t, exists)
	require.NoError(t, c.Delete(ctx, "k"))
	exists, _ = c.Exists(ctx, "k")
	assert.False(t, exists)
}
