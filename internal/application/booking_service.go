package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lendaround/service-sharing/internal/domain"
	bookingDomain "github.com/lendaround/service-sharing/internal/domain/booking"
	itemDomain "github.com/lendaround/service-sharing/internal/domain/item"
	userDomain "github.com/lendaround/service-sharing/internal/domain/user"
	"github.com/lendaround/service-sharing/internal/events"
	"github.com/lendaround/service-sharing/internal/kafka"
)

// EventPublisher publishes CloudEvents to a topic. Satisfied by
// kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// CreateBookingRequest holds the data needed to place a new booking.
type CreateBookingRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	ItemID int64     `json:"itemId" binding:"required"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	ItemID   int64     `json:"itemId"`
	BookerID int64     `json:"bookerId"`
	Status   string    `json:"status"`
}

// BookingService is the application service orchestrating booking use cases:
// placement, the owner's single approve-or-reject decision, access-checked
// reads, and state-filtered listings.
type BookingService struct {
	bookings bookingDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	producer EventPublisher
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	producer EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		producer: producer,
		logger:   logger,
	}
}

// CreateBooking places a new booking in WAITING status. Preconditions are
// checked in a fixed order; the first failing check wins and nothing is
// persisted.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingDTO, error) {
	if !req.End.After(req.Start) {
		return nil, domain.NewValidationError("booking end must be strictly after its start")
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if it.IsOwnedBy(bookerID) {
		return nil, domain.NewForbiddenError("owner cannot book own item")
	}
	if !it.Available() {
		return nil, domain.NewNotAvailableError(it.ID())
	}
	if _, err := s.users.FindByID(ctx, bookerID); err != nil {
		return nil, err
	}

	bk, err := bookingDomain.NewBooking(it.ID(), bookerID, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	evt := events.BookingRequestedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		BookerID:   bookerID,
		OwnerID:    it.OwnerID(),
		Start:      bk.Start(),
		End:        bk.End(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingRequested, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// ApproveBooking applies the owner's decision to a waiting booking. A
// booking that has already been decided cannot be decided again, even to the
// same outcome.
func (s *BookingService) ApproveBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	target := bookingDomain.StatusApproved
	if !approved {
		target = bookingDomain.StatusRejected
	}
	if bk.Status() != bookingDomain.StatusWaiting {
		return nil, domain.NewInvalidStateError(bk.Status().String(), target.String())
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(ownerID) {
		return nil, domain.NewForbiddenError(fmt.Sprintf("user with id=%d does not own the booked item", ownerID))
	}

	if err := bk.Decide(approved); err != nil {
		return nil, err
	}
	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	eventType := events.BookingApproved
	if !approved {
		eventType = events.BookingRejected
	}
	evt := events.BookingDecidedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		BookerID:   bk.BookerID(),
		OwnerID:    ownerID,
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, eventType, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a single booking for its booker or the item's owner.
func (s *BookingService) GetBooking(ctx context.Context, bookingID, callerID int64) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if !bk.IsBookedBy(callerID) && !it.IsOwnedBy(callerID) {
		return nil, domain.NewForbiddenError(fmt.Sprintf("user with id=%d is neither the booker nor the item owner", callerID))
	}

	result := toBookingDTO(bk)
	return &result, nil
}

// GetBookingsForBooker lists the user's own bookings filtered by state.
func (s *BookingService) GetBookingsForBooker(ctx context.Context, userID int64, stateToken string, page domain.Page) ([]BookingDTO, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	state, err := bookingDomain.ParseState(stateToken)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByBooker(ctx, userID, state, time.Now().UTC(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list booker bookings: %w", err)
	}
	return toBookingDTOs(bookings), nil
}

// GetBookingsForOwner lists bookings across all items the user owns,
// filtered by state. An existing owner with zero items gets an empty list,
// not an error.
func (s *BookingService) GetBookingsForOwner(ctx context.Context, userID int64, stateToken string, page domain.Page) ([]BookingDTO, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	state, err := bookingDomain.ParseState(stateToken)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByOwner(ctx, userID, state, time.Now().UTC(), page)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner bookings: %w", err)
	}
	return toBookingDTOs(bookings), nil
}

func (s *BookingService) ensureUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("user", userID)
	}
	return nil
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-sharing", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:       bk.ID(),
		Start:    bk.Start(),
		End:      bk.End(),
		ItemID:   bk.ItemID(),
		BookerID: bk.BookerID(),
		Status:   bk.Status().String(),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}
