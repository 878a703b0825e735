package storage_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := t.Context()
	store := storage.NewMemoryStore()

	var missing TestData
	found, err := store.Get(ctx, "nope", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", TestData{Field1: "a", Field2: 1}))

	var got TestData
	found, err = store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, TestData{Field1: "a", Field2: 1}, got)

	require.NoError(t, store.Delete(ctx, "k"))

	found, err = store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	assert.Error(t, store.Set(ctx, "bad", make(chan int)))
	assert.NoError(t, store.Close())
}

func TestMemoryStoreTTL(t *testing.T) {
	// Arrange
	ctx := t.Context()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := storage.NewMemoryStoreWithTTL(time.Hour, func() time.Time { return now })
	sized, ok := store.(interface{ Len() int })
	require.True(t, ok)

	require.NoError(t, store.Set(ctx, "old", TestData{Field1: "a"}))
	require.NoError(t, store.Set(ctx, "other", TestData{Field1: "b"}))

	// Act: just inside the window
	now = now.Add(59 * time.Minute)

	var got TestData
	found, err := store.Get(ctx, "old", &got)

	// Assert
	require.NoError(t, err)
	assert.True(t, found)

	// Act: past the window
	now = now.Add(2 * time.Minute)
	found, err = store.Get(ctx, "old", &got)

	// Assert
	require.NoError(t, err)
	assert.False(t, found, "expired keys read as missing")
	assert.Equal(t, 1, sized.Len(), "the expired key is dropped on read")

	// Act: a later write sweeps keys nobody reads again
	require.NoError(t, store.Set(ctx, "fresh", TestData{Field1: "c"}))

	// Assert
	assert.Equal(t, 1, sized.Len())
	found, _ = store.Get(ctx, "fresh", &got)
	assert.True(t, found)
}
