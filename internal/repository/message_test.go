package repository

import (
	"context"
	"testing"
	"time"

	"vybe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_ListInvolving(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sent := &models.Message{SenderID: "u-1", ReceiverID: "u-2", Content: "yo", Timestamp: base}
	received := &models.Message{SenderID: "u-3", ReceiverID: "u-1", Content: "set times?", Timestamp: base.Add(time.Minute)}
	unrelated := &models.Message{SenderID: "u-2", ReceiverID: "u-3", Content: "not ours", Timestamp: base}
	require.NoError(t, repo.Create(ctx, sent))
	require.NoError(t, repo.Create(ctx, received))
	require.NoError(t, repo.Create(ctx, unrelated))

	messages, err := repo.ListInvolving(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "yo", messages[0].Content, "oldest first")
	assert.Equal(t, "set times?", messages[1].Content)
}

func TestMessageRepository_MarkRead(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	message := &models.Message{SenderID: "u-1", ReceiverID: "u-2", Content: "hi", Timestamp: time.Now()}
	require.NoError(t, repo.Create(ctx, message))

	require.NoError(t, repo.MarkRead(ctx, message.ID, "u-3"), "non-recipient is a no-op")
	got, err := repo.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.False(t, got.Read, "only the recipient can mark a message read")

	require.NoError(t, repo.MarkRead(ctx, message.ID, "u-2"))
	got, err = repo.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	assert.NoError(t, repo.MarkRead(ctx, "no-such-id", "u-2"), "unknown id is a no-op")
}

func TestMessageRepository_MarkConversationRead(t *testing.T) {
	t.Parallel()
	db := setupDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	base := time.Now()
	inbound1 := &models.Message{SenderID: "u-2", ReceiverID: "u-1", Content: "a", Timestamp: base}
	inbound2 := &models.Message{SenderID: "u-2", ReceiverID: "u-1", Content: "b", Timestamp: base.Add(time.Second)}
	outbound := &models.Message{SenderID: "u-1", ReceiverID: "u-2", Content: "c", Timestamp: base.Add(2 * time.Second)}
	otherPeer := &models.Message{SenderID: "u-3", ReceiverID: "u-1", Content: "d", Timestamp: base}
	for _, m := range []*models.Message{inbound1, inbound2, outbound, otherPeer} {
		require.NoError(t, repo.Create(ctx, m))
	}

	require.NoError(t, repo.MarkConversationRead(ctx, "u-1", "u-2"))

	messages, err := repo.ListInvolving(ctx, "u-1")
	require.NoError(t, err)
	byID := map[string]models.Message{}
	for _, m := range messages {
		byID[m.ID] = m
	}
	assert.True(t, byID[inbound1.ID].Read)
	assert.True(t, byID[inbound2.ID].Read)
	assert.False(t, byID[outbound.ID].Read, "own outbound messages stay untouched")
	assert.False(t, byID[otherPeer.ID].Read, "other conversations stay untouched")
}
