package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Compared against when the username does not resolve, so unknown-username
// and wrong-password take roughly the same time and return the same error.
var dummyPwHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService handles registration and login.
type AuthService struct {
	db        *gorm.DB
	users     repositories.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(db *gorm.DB, users repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  72 * time.Hour,
	}
}

// Register validates the submission and creates the user. Checks run in a
// fixed order and the first failure wins: missing username, invalid email,
// missing password, password mismatch, username taken. The taken-check and
// the insert share one transaction so concurrent registrations of the same
// name cannot both succeed; the unique index on username is the backstop.
func (s *AuthService) Register(ctx context.Context, username, email, password, password2 string) (uint, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, ErrMissingUsername
	}
	if email == "" || !strings.Contains(email, "@") {
		return 0, ErrInvalidEmail
	}
	if password == "" {
		return 0, ErrMissingPassword
	}
	if password != password2 {
		return 0, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{Username: username, Email: email, PwHash: string(hash)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repositories.NewGormUserRepository(tx)
		taken, err := users.UsernameExists(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}
		return users.CreateUser(ctx, user)
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login checks the password against the stored bcrypt hash. An unknown
// username and a wrong password yield the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyPwHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PwHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Token generates a signed JWT carrying the viewer identity for a given user
func (s *AuthService) Token(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
