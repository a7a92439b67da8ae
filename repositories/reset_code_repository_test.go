package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreConsume(t *testing.T) {
	store := NewMemoryResetCodeStore()

	require.NoError(t, store.Store("user@example.com", "123456", time.Minute))

	// Wrong code does not consume
	ok, err := store.Consume("user@example.com", "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	// Correct code consumes
	ok, err = store.Consume("user@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	// Codes are single use
	ok, err = store.Consume("user@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreUnknownEmail(t *testing.T) {
	store := NewMemoryResetCodeStore()

	ok, err := store.Consume("nobody@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreReplacesPreviousCode(t *testing.T) {
	store := NewMemoryResetCodeStore()

	require.NoError(t, store.Store("user@example.com", "111111", time.Minute))
	require.NoError(t, store.Store("user@example.com", "222222", time.Minute))

	ok, err := store.Consume("user@example.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok, "old code must be invalid after a new one is stored")

	ok, err = store.Consume("user@example.com", "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryResetCodeStore()

	require.NoError(t, store.Store("user@example.com", "123456", -time.Second))

	ok, err := store.Consume("user@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "expired code must not be accepted")
}

func TestMemoryStoreCleanupExpired(t *testing.T) {
	store := NewMemoryResetCodeStore()

	require.NoError(t, store.Store("expired@example.com", "111111", -time.Second))
	require.NoError(t, store.Store("fresh@example.com", "222222", time.Minute))

	removed := store.CleanupExpired()
	assert.Equal(t, 1, removed)

	// The fresh code survives cleanup
	ok, err := store.Consume("fresh@example.com", "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}
