package services

import (
	"context"

	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/repositories"
)

const (
	// DefaultFeedLimit matches the original per-page size.
	DefaultFeedLimit = 30
	// MaxFeedLimit caps a caller-supplied limit.
	MaxFeedLimit = 100
)

// AuthorFeed is an author's timeline plus the follow affordance for the viewer.
type AuthorFeed struct {
	AuthorID           uint                   `json:"author_id"`
	Author             string                 `json:"author"`
	Entries            []models.TimelineEntry `json:"entries"`
	IsFollowedByViewer bool                   `json:"is_followed_by_viewer"`
}

// TimelineService composes the three feed shapes from the message store and
// the follow graph. All feeds are ordered published_at descending with the
// message ID as tie-break, limited to the latest N. An empty feed is a valid
// result, distinct from an unknown user.
type TimelineService struct {
	users    repositories.UserRepository
	follows  repositories.FollowRepository
	messages repositories.MessageRepository
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(users repositories.UserRepository, follows repositories.FollowRepository, messages repositories.MessageRepository) *TimelineService {
	return &TimelineService{users: users, follows: follows, messages: messages}
}

// Personal returns the latest messages authored by the viewer or anyone the
// viewer follows. The viewer must be authenticated; anonymous callers get the
// public feed instead.
func (s *TimelineService) Personal(ctx context.Context, viewerID uint, limit int) ([]models.TimelineEntry, error) {
	if err := ensureUserExists(ctx, s.users, viewerID); err != nil {
		return nil, err
	}
	following, err := s.follows.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(following, viewerID)
	messages, err := s.messages.GetByAuthors(ctx, authorIDs, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, messages)
}

// Public returns the latest messages across all users.
func (s *TimelineService) Public(ctx context.Context, limit int) ([]models.TimelineEntry, error) {
	messages, err := s.messages.GetPublic(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, messages)
}

// Author returns one user's latest messages. viewerID may be 0 for anonymous
// requests, in which case IsFollowedByViewer is always false.
func (s *TimelineService) Author(ctx context.Context, username string, viewerID uint, limit int) (*AuthorFeed, error) {
	author, err := resolveUsername(ctx, s.users, username)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.GetByAuthor(ctx, author.ID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	entries, err := s.enrich(ctx, messages)
	if err != nil {
		return nil, err
	}

	followed := false
	if viewerID != 0 {
		followed, err = s.follows.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}
	return &AuthorFeed{
		AuthorID:           author.ID,
		Author:             author.Username,
		Entries:            entries,
		IsFollowedByViewer: followed,
	}, nil
}

// enrich attaches author usernames with one batch lookup instead of a query
// per message.
func (s *TimelineService) enrich(ctx context.Context, messages []models.Message) ([]models.TimelineEntry, error) {
	entries := make([]models.TimelineEntry, 0, len(messages))

	seen := make(map[uint]bool)
	authorIDs := make([]uint, 0, len(messages))
	for _, m := range messages {
		if !seen[m.AuthorID] {
			seen[m.AuthorID] = true
			authorIDs = append(authorIDs, m.AuthorID)
		}
	}
	authors, err := s.users.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	usernames := make(map[uint]string, len(authors))
	for _, a := range authors {
		usernames[a.ID] = a.Username
	}

	for _, m := range messages {
		entries = append(entries, models.TimelineEntry{
			MessageID:   m.ID,
			AuthorID:    m.AuthorID,
			Author:      usernames[m.AuthorID],
			Text:        m.Text,
			PublishedAt: m.PublishedAt,
		})
	}
	return entries, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		return MaxFeedLimit
	}
	return limit
}
