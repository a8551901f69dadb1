package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/repositories"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Follow{}, &models.Message{}))
	return db
}

type testEnv struct {
	db       *gorm.DB
	auth     *AuthService
	follows  *FollowService
	messages *MessageService
	timeline *TimelineService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	userRepo := repositories.NewGormUserRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	messageRepo := repositories.NewGormMessageRepository(db)
	return &testEnv{
		db:       db,
		auth:     NewAuthService(db, userRepo, "test secret"),
		follows:  NewFollowService(db, userRepo, followRepo),
		messages: NewMessageService(db),
		timeline: NewTimelineService(userRepo, followRepo, messageRepo),
	}
}

// register creates a user with the default password, as the original test
// suite does.
func (e *testEnv) register(t *testing.T, username string) uint {
	t.Helper()
	id, err := e.auth.Register(context.Background(), username, username+"@example.com", "default", "default")
	require.NoError(t, err)
	return id
}

func (e *testEnv) post(t *testing.T, authorID uint, text string) uint {
	t.Helper()
	id, err := e.messages.Post(context.Background(), authorID, text)
	require.NoError(t, err)
	return id
}

func (e *testEnv) userCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.User{}).Count(&count).Error)
	return count
}

func (e *testEnv) followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func (e *testEnv) messageCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.Message{}).Count(&count).Error)
	return count
}

func entryTexts(entries []models.TimelineEntry) []string {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}
	return texts
}
