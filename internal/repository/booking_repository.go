package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lendaround/service-sharing/internal/domain"
	bookingDomain "github.com/lendaround/service-sharing/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	StartAt  time.Time `gorm:"not null;index"`
	EndAt    time.Time `gorm:"not null"`
	ItemID   int64     `gorm:"not null;index"`
	BookerID int64     `gorm:"not null;index"`
	Status   string    `gorm:"not null;size:20;index"`
	Version  int64     `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of the booking
// repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model), nil
}

// FindByBooker retrieves bookings created by the given user, filtered by
// state at instant now, sorted by start descending (id ascending tiebreak).
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{}).Where("booker_id = ?", bookerID)
	query = applyStateFilter(query, state, now)

	var models []BookingModel
	if err := query.
		Order("start_at DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find booker bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

// FindByOwner retrieves bookings across all items owned by the given user,
// filtered by state at instant now, sorted by start descending.
func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("bookings.*").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	query = applyStateFilter(query, state, now)

	var models []BookingModel
	if err := query.
		Order("bookings.start_at DESC, bookings.id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner bookings: %w", err)
	}
	return toDomainBookings(models), nil
}

// FindLastForItem retrieves the most recent APPROVED booking of the item
// whose start precedes now, or nil when there is none.
func (r *GormBookingRepository) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_at < ?", itemID, bookingDomain.StatusApproved.String(), now).
		Order("start_at DESC, id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find last booking for item: %w", err)
	}
	return toDomainBooking(&model), nil
}

// FindNextForItem retrieves the nearest APPROVED booking of the item whose
// start follows now, or nil when there is none.
func (r *GormBookingRepository) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_at > ?", itemID, bookingDomain.StatusApproved.String(), now).
		Order("start_at ASC, id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find next booking for item: %w", err)
	}
	return toDomainBooking(&model), nil
}

// HasCompletedApproved reports whether the user has an APPROVED booking of
// the item that fully elapsed before now.
func (r *GormBookingRepository) HasCompletedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("item_id = ? AND booker_id = ? AND status = ? AND end_at < ?",
			itemID, bookerID, bookingDomain.StatusApproved.String(), now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count completed bookings: %w", err)
	}
	return count > 0, nil
}

// Save persists a new booking and assigns its identifier.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	*bk = *toDomainBooking(model)
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
// The second of two concurrent decisions loses the version race and gets a
// conflict instead of silently overwriting the first.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		StartAt:   bk.Start(),
		EndAt:     bk.End(),
		ItemID:    bk.ItemID(),
		BookerID:  bk.BookerID(),
		Status:    bk.Status().String(),
		Version:   bk.Version(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(
		m.ID,
		m.ItemID,
		m.BookerID,
		m.StartAt,
		m.EndAt,
		bookingDomain.Status(m.Status),
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func toDomainBookings(models []BookingModel) []*bookingDomain.Booking {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings
}

func applyStateFilter(query *gorm.DB, state bookingDomain.State, now time.Time) *gorm.DB {
	switch state {
	case bookingDomain.StateCurrent:
		return query.Where("bookings.start_at < ? AND bookings.end_at > ?", now, now)
	case bookingDomain.StatePast:
		return query.Where("bookings.end_at < ?", now)
	case bookingDomain.StateFuture:
		return query.Where("bookings.start_at > ?", now)
	case bookingDomain.StateWaiting:
		return query.Where("bookings.status = ?", bookingDomain.StatusWaiting.String())
	case bookingDomain.StateRejected:
		return query.Where("bookings.status = ?", bookingDomain.StatusRejected.String())
	default:
		// ALL: no filter.
		return query
	}
}
