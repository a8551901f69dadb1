package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is a registered account. The username is immutable after creation and
// unique across all users; follow edges and messages reference the stable ID.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email"`
	PwHash    string    `json:"-" gorm:"not null"` // bcrypt hash, never the raw password
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the request body for user registration. Field checks run
// in the auth service in a fixed order, so no validate tags here.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// LoginRequest is the request body for signing in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
