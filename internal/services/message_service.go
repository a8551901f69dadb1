package services

import (
	"context"
	"strings"
	"time"

	"github.com/wYibin/miniweibo/internal/models"
	"github.com/wYibin/miniweibo/internal/repositories"
	"gorm.io/gorm"
)

// MessageService appends messages to the store. Messages are immutable and
// become visible to feed queries as soon as the transaction commits.
type MessageService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewMessageService creates a new MessageService
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db, now: time.Now}
}

// Post appends one message for authorID. Fails with ErrEmptyText when the
// trimmed text is empty and ErrUnknownUser when the author does not resolve.
// PublishedAt comes from the service clock at second resolution.
func (s *MessageService) Post(ctx context.Context, authorID uint, text string) (uint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}

	message := &models.Message{
		AuthorID:    authorID,
		Text:        text,
		PublishedAt: s.now().Truncate(time.Second),
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUserExists(ctx, repositories.NewGormUserRepository(tx), authorID); err != nil {
			return err
		}
		return repositories.NewGormMessageRepository(tx).CreateMessage(ctx, message)
	})
	if err != nil {
		return 0, err
	}
	return message.ID, nil
}
