package item

import (
	"strings"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

const maxCommentLength = 1000

// Comment is feedback left on an item by a user who completed a rental of it.
type Comment struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

// NewComment creates a new Comment with created set to now.
func NewComment(itemID, authorID int64, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	if len(text) > maxCommentLength {
		return nil, domain.NewValidationError("comment text must not exceed 1000 characters")
	}
	return &Comment{
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  time.Now().UTC(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data (no validation).
func ReconstructComment(id int64, text string, itemID, authorID int64, created time.Time) *Comment {
	return &Comment{
		id:       id,
		text:     text,
		itemID:   itemID,
		authorID: authorID,
		created:  created,
	}
}

// ID returns the store-assigned identifier (zero until saved).
func (c *Comment) ID() int64 { return c.id }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// ItemID returns the commented item's identifier.
func (c *Comment) ItemID() int64 { return c.itemID }

// AuthorID returns the identifier of the user who wrote the comment.
func (c *Comment) AuthorID() int64 { return c.authorID }

// Created returns the creation timestamp.
func (c *Comment) Created() time.Time { return c.created }
