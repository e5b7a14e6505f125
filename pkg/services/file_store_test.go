package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileConversationStore_RoundTrip(t *testing.T) {
	store, err := NewFileConversationStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.Ensure(ctx, id, nil))
	// Ensure is idempotent.
	require.NoError(t, store.Ensure(ctx, id, nil))

	n, err := store.MessageCount(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.AppendMessage(ctx, id, "user", "what is raft?"))
	require.NoError(t, store.AppendMessage(ctx, id, "assistant", "a consensus algorithm"))

	n, err = store.MessageCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	history, err := store.History(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "what is raft?", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)

	require.NoError(t, store.SetTitle(ctx, id, "Raft basics"))
	detail, err := store.Get(ctx, id, nil)
	require.NoError(t, err)
	assert.Equal(t, "Raft basics", detail.Title)
	assert.Len(t, detail.Messages, 2)

	list, err := store.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
}

func TestFileConversationStore_NotFound(t *testing.T) {
	store, err := NewFileConversationStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.AppendMessage(ctx, uuid.New(), "user", "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileConversationStore_RejectsBadRole(t *testing.T) {
	store, err := NewFileConversationStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.Ensure(ctx, id, nil))
	err = store.AppendMessage(ctx, id, "system", "nope")
	assert.True(t, IsValidationError(err))
}
