package models

import "time"

// Follow is one directed edge in the follow graph: follower → followed.
// The composite unique index makes the pair a set member, so a repeated
// follow cannot create a second edge.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed;not null"`
	FollowedID uint      `json:"followed_id" gorm:"uniqueIndex:idx_follower_followed;not null"`
	CreatedAt  time.Time `json:"created_at"`
}
