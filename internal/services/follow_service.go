package services

import (
	"context"
	"errors"

	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/repositories"
	"gorm.io/gorm"
)

// FollowService applies follow/unfollow mutations. Both are idempotent:
// re-following keeps a single edge, unfollowing a missing edge succeeds.
type FollowService struct {
	db      *gorm.DB
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(db *gorm.DB, users repositories.UserRepository, follows repositories.FollowRepository) *FollowService {
	return &FollowService{db: db, users: users, follows: follows}
}

// Follow adds the edge follower → username. Fails with ErrUnknownUser when
// either side does not resolve and ErrSelfFollow when they are the same user.
func (s *FollowService) Follow(ctx context.Context, followerID uint, username string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repositories.NewGormUserRepository(tx)
		target, err := resolveUsername(ctx, users, username)
		if err != nil {
			return err
		}
		if target.ID == followerID {
			return ErrSelfFollow
		}
		if err := ensureUserExists(ctx, users, followerID); err != nil {
			return err
		}
		return repositories.NewGormFollowRepository(tx).CreateFollow(ctx, followerID, target.ID)
	})
}

// Unfollow removes the edge follower → username if it exists.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, username string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := resolveUsername(ctx, repositories.NewGormUserRepository(tx), username)
		if err != nil {
			return err
		}
		return repositories.NewGormFollowRepository(tx).DeleteFollow(ctx, followerID, target.ID)
	})
}

// IsFollowing reports whether follower → followed is in the graph.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.follows.IsFollowing(ctx, followerID, followedID)
}

// Followers returns the IDs of users following userID.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]uint, error) {
	return s.follows.GetFollowerIDs(ctx, userID)
}

// Following returns the IDs of users userID follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]uint, error) {
	return s.follows.GetFollowingIDs(ctx, userID)
}

// resolveUsername maps a username to its user, turning a missing row into
// ErrUnknownUser.
func resolveUsername(ctx context.Context, users repositories.UserRepository, username string) (*models.User, error) {
	user, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return user, nil
}

// ensureUserExists turns a missing user ID into ErrUnknownUser.
func ensureUserExists(ctx context.Context, users repositories.UserRepository, id uint) error {
	if _, err := users.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownUser
		}
		return err
	}
	return nil
}
