package events

import "time"

// Topics.
const (
	TopicBookingEvents = "sharing.booking.events"
	TopicItemEvents    = "sharing.item.events"
)

// Event types.
const (
	BookingRequested = "booking.requested"
	BookingApproved  = "booking.approved"
	BookingRejected  = "booking.rejected"
	CommentAdded     = "item.comment_added"
)

// BookingRequestedEvent is published when a booker places a new reservation.
type BookingRequestedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDecidedEvent is published when the owner approves or rejects a
// waiting booking. The event type distinguishes the two outcomes.
type BookingDecidedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	OwnerID    int64     `json:"owner_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CommentAddedEvent is published when a renter leaves feedback on an item
// after a completed booking.
type CommentAddedEvent struct {
	CommentID  int64     `json:"comment_id"`
	ItemID     int64     `json:"item_id"`
	AuthorID   int64     `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
