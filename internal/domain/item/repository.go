package item

import (
	"context"

	"github.com/lendaround/service-sharing/internal/domain"
)

// Repository defines the persistence contract for item aggregates.
type Repository interface {
	// FindByID retrieves an item by its identifier.
	FindByID(ctx context.Context, id int64) (*Item, error)

	// FindByOwner retrieves the items owned by a user, ordered by id ascending.
	FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*Item, error)

	// FindByRequests retrieves the items created in fulfillment of any of the
	// given requests, keyed by request id.
	FindByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*Item, error)

	// Search retrieves available items whose name or description contains the
	// text, case-insensitively. Callers are expected to short-circuit blank
	// queries before reaching the store.
	Search(ctx context.Context, text string, page domain.Page) ([]*Item, error)

	// Save persists a new item and assigns its identifier.
	Save(ctx context.Context, i *Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, i *Item) error
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	// FindByItem retrieves the comments on an item, oldest first.
	FindByItem(ctx context.Context, itemID int64) ([]*Comment, error)

	// FindByItems retrieves comments for all given items, keyed by item id,
	// each slice oldest first.
	FindByItems(ctx context.Context, itemIDs []int64) (map[int64][]*Comment, error)

	// Save persists a new comment and assigns its identifier.
	Save(ctx context.Context, c *Comment) error
}
