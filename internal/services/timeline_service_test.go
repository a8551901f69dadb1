package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimelines walks the original end-to-end scenario: two users post, bar
// follows foo, then unfollows again.
func TestTimelines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fooID := env.register(t, "foo")
	barID := env.register(t, "bar")
	env.post(t, fooID, "the message by foo")
	env.post(t, barID, "the message by bar")

	public, err := env.timeline.Public(ctx, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"the message by foo", "the message by bar"}, entryTexts(public))

	// bar's personal timeline before following foo
	personal, err := env.timeline.Personal(ctx, barID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"the message by bar"}, entryTexts(personal))

	// after following foo
	require.NoError(t, env.follows.Follow(ctx, barID, "foo"))
	personal, err = env.timeline.Personal(ctx, barID, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"the message by foo", "the message by bar"}, entryTexts(personal))

	// author timelines
	feed, err := env.timeline.Author(ctx, "bar", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"the message by bar"}, entryTexts(feed.Entries))

	feed, err = env.timeline.Author(ctx, "foo", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"the message by foo"}, entryTexts(feed.Entries))

	// after unfollowing foo
	require.NoError(t, env.follows.Unfollow(ctx, barID, "foo"))
	personal, err = env.timeline.Personal(ctx, barID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"the message by bar"}, entryTexts(personal))
}

func TestPersonalExcludesUnrelatedAuthors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	aID := env.register(t, "a")
	bID := env.register(t, "b")
	cID := env.register(t, "c")
	require.NoError(t, env.follows.Follow(ctx, aID, "b"))

	env.post(t, aID, "by a")
	env.post(t, bID, "by b")
	env.post(t, cID, "by c")

	personal, err := env.timeline.Personal(ctx, aID, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"by a", "by b"}, entryTexts(personal))
}

func TestPersonalUnknownViewer(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.timeline.Personal(context.Background(), 9999, 0)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestFeedOrderingWithTimestampTies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fooID := env.register(t, "foo")

	// Pin the clock so all three messages collide at the same second; the
	// message ID must break the tie, newest insert first.
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	env.messages.now = func() time.Time { return fixed }
	env.post(t, fooID, "first")
	env.post(t, fooID, "second")
	env.post(t, fooID, "third")

	// An older message sorts after the tied group regardless of its ID.
	env.messages.now = func() time.Time { return fixed.Add(-time.Minute) }
	env.post(t, fooID, "older")

	public, err := env.timeline.Public(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first", "older"}, entryTexts(public))

	feed, err := env.timeline.Author(ctx, "foo", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first", "older"}, entryTexts(feed.Entries))
}

func TestPublicLimitAndViewerInvariance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fooID := env.register(t, "foo")
	barID := env.register(t, "bar")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		env.messages.now = func() time.Time { return base.Add(time.Duration(i) * time.Second) }
		env.post(t, fooID, fmt.Sprintf("message %d", i))
	}

	public, err := env.timeline.Public(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"message 4", "message 3", "message 2"}, entryTexts(public))

	// The public feed does not depend on anyone's follow graph.
	require.NoError(t, env.follows.Follow(ctx, barID, "foo"))
	after, err := env.timeline.Public(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entryTexts(public), entryTexts(after))

	// An absent limit falls back to the default page size.
	all, err := env.timeline.Public(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestAuthorFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fooID := env.register(t, "foo")
	barID := env.register(t, "bar")
	env.post(t, fooID, "the message by foo")

	_, err := env.timeline.Author(ctx, "nobody", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownUser)

	// Anonymous viewer: the follow flag stays false.
	feed, err := env.timeline.Author(ctx, "foo", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "foo", feed.Author)
	assert.Equal(t, fooID, feed.AuthorID)
	assert.False(t, feed.IsFollowedByViewer)

	feed, err = env.timeline.Author(ctx, "foo", barID, 0)
	require.NoError(t, err)
	assert.False(t, feed.IsFollowedByViewer)

	require.NoError(t, env.follows.Follow(ctx, barID, "foo"))
	feed, err = env.timeline.Author(ctx, "foo", barID, 0)
	require.NoError(t, err)
	assert.True(t, feed.IsFollowedByViewer)
}

// An empty feed is a valid result, not an error.
func TestEmptyFeeds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fooID := env.register(t, "foo")

	personal, err := env.timeline.Personal(ctx, fooID, 0)
	require.NoError(t, err)
	assert.Empty(t, personal)

	public, err := env.timeline.Public(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, public)

	feed, err := env.timeline.Author(ctx, "foo", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, feed.Entries)
}
