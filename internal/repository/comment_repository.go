package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	itemDomain "github.com/lendaround/service-sharing/internal/domain/item"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Text     string `gorm:"not null;size:1000"`
	ItemID   int64  `gorm:"not null;index"`
	AuthorID int64  `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// GormCommentRepository is the GORM-based implementation of the comment
// repository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByItem retrieves the comments on an item, oldest first.
func (r *GormCommentRepository) FindByItem(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item comments: %w", err)
	}
	return toDomainComments(models), nil
}

// FindByItems retrieves comments for all given items, keyed by item id.
func (r *GormCommentRepository) FindByItems(ctx context.Context, itemIDs []int64) (map[int64][]*itemDomain.Comment, error) {
	byItem := make(map[int64][]*itemDomain.Comment)
	if len(itemIDs) == 0 {
		return byItem, nil
	}

	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Where("item_id IN ?", itemIDs).
		Order("created_at ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments by items: %w", err)
	}

	for i := range models {
		c := toDomainComment(&models[i])
		byItem[c.ItemID()] = append(byItem[c.ItemID()], c)
	}
	return byItem, nil
}

// Save persists a new comment and assigns its identifier.
func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) error {
	model := toCommentModel(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	*c = *toDomainComment(model)
	return nil
}

func toCommentModel(c *itemDomain.Comment) *CommentModel {
	return &CommentModel{
		ID:        c.ID(),
		Text:      c.Text(),
		ItemID:    c.ItemID(),
		AuthorID:  c.AuthorID(),
		CreatedAt: c.Created(),
	}
}

func toDomainComment(m *CommentModel) *itemDomain.Comment {
	return itemDomain.ReconstructComment(m.ID, m.Text, m.ItemID, m.AuthorID, m.CreatedAt)
}

func toDomainComments(models []CommentModel) []*itemDomain.Comment {
	comments := make([]*itemDomain.Comment, len(models))
	for i := range models {
		comments[i] = toDomainComment(&models[i])
	}
	return comments
}
