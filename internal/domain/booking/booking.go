package booking

import (
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

// Booking is the aggregate root for the booking domain: a reservation of an
// item by a user for a time interval, with an approval status.
type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   Status

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking in WAITING status. The end of the interval
// must be strictly after its start.
func NewBooking(itemID, bookerID int64, start, end time.Time) (*Booking, error) {
	if itemID <= 0 {
		return nil, domain.NewValidationError("item ID is required")
	}
	if bookerID <= 0 {
		return nil, domain.NewValidationError("booker ID is required")
	}
	if !end.After(start) {
		return nil, domain.NewValidationError("booking end must be strictly after its start")
	}

	now := time.Now().UTC()
	return &Booking{
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, itemID, bookerID int64,
	start, end time.Time,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the store-assigned identifier (zero until saved).
func (b *Booking) ID() int64 { return b.id }

// ItemID returns the booked item's identifier.
func (b *Booking) ItemID() int64 { return b.itemID }

// BookerID returns the identifier of the user who created the booking.
func (b *Booking) BookerID() int64 { return b.bookerID }

// Start returns the beginning of the reservation interval.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the reservation interval.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current booking status.
func (b *Booking) Status() Status { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Decide transitions the booking out of WAITING: to APPROVED when approved is
// true, to REJECTED otherwise. A booking that has already been decided cannot
// be decided again.
func (b *Booking) Decide(approved bool) error {
	target := StatusApproved
	if !approved {
		target = StatusRejected
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewInvalidStateError(string(b.status), string(target))
	}
	b.status = target
	b.updatedAt = time.Now().UTC()
	return nil
}

// IsBookedBy reports whether the given user created this booking.
func (b *Booking) IsBookedBy(userID int64) bool {
	return b.bookerID == userID
}

// CompletedBy reports whether this booking is a finished rental by the given
// user at instant t: APPROVED and fully elapsed.
func (b *Booking) CompletedBy(userID int64, t time.Time) bool {
	return b.bookerID == userID && b.status == StatusApproved && b.end.Before(t)
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
