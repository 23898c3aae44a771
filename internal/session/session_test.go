package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenIsOpaqueAndUnique(t *testing.T) {
	a, err := newToken()
	require.NoError(t, err)
	b, err := newToken()
	require.NoError(t, err)

	assert.Len(t, a, 64, "32 random bytes hex-encoded")
	assert.NotEqual(t, a, b)
}

func TestMemoryStoreValidateUnknownToken(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)

	ok, err := store.Validate(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreTTLBoundary(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	t0 := time.Now()
	store.now = func() time.Time { return t0 }

	token, err := store.Create(ctx)
	require.NoError(t, err)

	ok, err := store.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok, "valid immediately after creation")

	store.now = func() time.Time { return t0.Add(DefaultTTL - time.Second) }
	ok, err = store.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok, "still valid just inside the TTL")

	store.now = func() time.Time { return t0.Add(DefaultTTL + time.Second) }
	ok, err = store.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok, "invalid once the TTL has elapsed")

	// expiry evicts the entry, so the token stays invalid even if the
	// clock were to move back
	store.now = func() time.Time { return t0 }
	ok, err = store.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDeleteRevokesImmediately(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	token, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))

	ok, err := store.Validate(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting again is a no-op
	require.NoError(t, store.Delete(ctx, token))
}
