package item

import (
	"strings"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 500
)

// Item is the aggregate root for a lendable item. The owner is set at
// creation and never changes afterwards.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64

	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates a new Item owned by the given user, optionally in
// fulfillment of an item request.
func NewItem(ownerID int64, name, description string, available bool, requestID *int64) (*Item, error) {
	if ownerID <= 0 {
		return nil, domain.NewValidationError("owner ID is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("item name is required")
	}
	if len(name) > maxNameLength {
		return nil, domain.NewValidationError("item name must not exceed 255 characters")
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Item{
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id int64, name, description string, available bool, ownerID int64, requestID *int64, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		ownerID:     ownerID,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the store-assigned identifier (zero until saved).
func (i *Item) ID() int64 { return i.id }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item can currently be booked.
func (i *Item) Available() bool { return i.available }

// OwnerID returns the owning user's identifier.
func (i *Item) OwnerID() int64 { return i.ownerID }

// RequestID returns the identifier of the item request this item fulfills,
// or nil when it was created independently.
func (i *Item) RequestID() *int64 { return i.requestID }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// IsOwnedBy reports whether the given user owns this item.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

// Update applies a partial update: nil fields are left untouched.
func (i *Item) Update(name, description *string, available *bool) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return domain.NewValidationError("item name must not be blank")
		}
		if len(*name) > maxNameLength {
			return domain.NewValidationError("item name must not exceed 255 characters")
		}
		i.name = *name
	}
	if description != nil {
		if err := validateDescription(*description); err != nil {
			return err
		}
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	i.updatedAt = time.Now().UTC()
	return nil
}

func validateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return domain.NewValidationError("item description must not exceed 500 characters")
	}
	return nil
}
