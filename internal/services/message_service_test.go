package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRejectsEmptyText(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fooID := env.register(t, "foo")

	_, err := env.messages.Post(ctx, fooID, "")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = env.messages.Post(ctx, fooID, "   \t\n")
	assert.ErrorIs(t, err, ErrEmptyText)

	assert.Equal(t, int64(0), env.messageCount(t))
}

func TestPostUnknownAuthor(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.messages.Post(context.Background(), 42, "hello")
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.Equal(t, int64(0), env.messageCount(t))
}

func TestPostIsImmediatelyVisible(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fooID := env.register(t, "foo")

	id := env.post(t, fooID, "test message 1")
	assert.NotZero(t, id)

	entries, err := env.timeline.Public(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test message 1", entries[0].Text)
	assert.Equal(t, "foo", entries[0].Author)
	assert.Equal(t, fooID, entries[0].AuthorID)
}

func TestPostTrimsText(t *testing.T) {
	env := newTestEnv(t)
	fooID := env.register(t, "foo")

	env.post(t, fooID, "  spaced out  ")

	entries, err := env.timeline.Public(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "spaced out", entries[0].Text)
}
