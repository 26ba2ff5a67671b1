package repository_test

import (
	"context"
	"testing"
	"time"
	"training-center-files/internal/model"
	"training-center-files/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContent(body string) *model.FileContent {
	return &model.FileContent{Content: body, ContentType: "text/plain"}
}

func TestMemoryContentCache_GetSet(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := repository.NewMemoryContentCache(time.Hour, func() time.Time { return now })
	ctx := context.Background()

	got, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, "key1", testContent("v1")))

	got, err = cache.Get(ctx, "key1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v1", got.Content)
}

func TestMemoryContentCache_Expiry(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := repository.NewMemoryContentCache(time.Hour, func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key1", testContent("v1")))

	// за секунду до истечения запись ещё жива
	now = now.Add(time.Hour - time.Second)
	got, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	// ровно на границе TTL запись считается просроченной
	now = now.Add(time.Second)
	got, err = cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryContentCache_SetRefreshesTTL(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	cache := repository.NewMemoryContentCache(time.Hour, func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key1", testContent("v1")))

	now = now.Add(50 * time.Minute)
	require.NoError(t, cache.Set(ctx, "key1", testContent("v2")))

	// старая запись уже истекла бы, перезапись продлила срок жизни
	now = now.Add(30 * time.Minute)
	got, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v2", got.Content)
}

func TestMemoryContentCache_Delete(t *testing.T) {
	cache := repository.NewMemoryContentCache(time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key1", testContent("v1")))
	require.NoError(t, cache.Set(ctx, "key2", testContent("v2")))

	require.NoError(t, cache.Delete(ctx, "key1"))

	got, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = cache.Get(ctx, "key2")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryContentCache_DeletePrefix(t *testing.T) {
	cache := repository.NewMemoryContentCache(time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "filecontent:attendee:a1:doc1:f1", testContent("v1")))
	require.NoError(t, cache.Set(ctx, "filecontent:attendee:a1:doc1:f2", testContent("v2")))
	require.NoError(t, cache.Set(ctx, "filecontent:attendee:a1:doc2:f3", testContent("v3")))

	require.NoError(t, cache.DeletePrefix(ctx, "filecontent:attendee:a1:doc1:"))

	for _, key := range []string{"filecontent:attendee:a1:doc1:f1", "filecontent:attendee:a1:doc1:f2"} {
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got, key)
	}

	got, err := cache.Get(ctx, "filecontent:attendee:a1:doc2:f3")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
