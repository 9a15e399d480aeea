package booking

import (
	"context"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

// Repository defines the persistence contract for booking aggregates.
//
// Listing queries filter by the given state evaluated at the single instant
// "now", sort by start descending with id ascending as the deterministic
// tiebreaker, and apply the page window after filtering and sorting.
type Repository interface {
	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// FindByBooker retrieves bookings created by the given user.
	FindByBooker(ctx context.Context, bookerID int64, state State, now time.Time, page domain.Page) ([]*Booking, error)

	// FindByOwner retrieves bookings across all items owned by the given user.
	FindByOwner(ctx context.Context, ownerID int64, state State, now time.Time, page domain.Page) ([]*Booking, error)

	// FindLastForItem retrieves the most recent APPROVED booking of the item
	// whose start precedes now, or nil when there is none.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindNextForItem retrieves the nearest APPROVED booking of the item whose
	// start follows now, or nil when there is none.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// HasCompletedApproved reports whether the user has at least one APPROVED
	// booking of the item that fully elapsed before now.
	HasCompletedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)

	// Save persists a new booking and assigns its identifier.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error
}
