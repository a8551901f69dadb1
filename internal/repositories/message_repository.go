package repositories

import (
	"context"

	"github.com/wYibin/miniweibo/internal/models"
	"gorm.io/gorm"
)

// feedOrder sorts newest first; the id tie-break gives a deterministic total
// order when published_at collides at second resolution.
const feedOrder = "published_at DESC, id DESC"

// MessageRepository stores append-only messages and answers the three
// newest-first feed queries.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	GetByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Message, error)
	GetByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]models.Message, error)
	GetPublic(ctx context.Context, limit int) ([]models.Message, error)
}

// GormMessageRepository implements MessageRepository over a gorm connection.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GormMessageRepository
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *GormMessageRepository) GetByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order(feedOrder).
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) GetByAuthors(ctx context.Context, authorIDs []uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	if len(authorIDs) == 0 {
		return messages, nil
	}
	err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order(feedOrder).
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *GormMessageRepository) GetPublic(ctx context.Context, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Order(feedOrder).
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
