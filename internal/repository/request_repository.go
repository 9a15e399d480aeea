package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lendaround/service-sharing/internal/domain"
	requestDomain "github.com/lendaround/service-sharing/internal/domain/request"
)

// RequestModel is the GORM model for the requests table.
type RequestModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"not null;size:500"`
	RequesterID int64  `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "requests"
}

// GormRequestRepository is the GORM-based implementation of the item request
// repository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by its identifier.
func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.Request, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("request", id)
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindByRequester retrieves a user's own requests, newest first.
func (r *GormRequestRepository) FindByRequester(ctx context.Context, requesterID int64, page domain.Page) ([]*requestDomain.Request, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requester requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindByOthers retrieves requests created by everyone except the given user,
// newest first.
func (r *GormRequestRepository) FindByOthers(ctx context.Context, userID int64, page domain.Page) ([]*requestDomain.Request, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requester_id <> ?", userID).
		Order("created_at DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// Save persists a new request and assigns its identifier.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.Request) error {
	model := toRequestModel(req)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	*req = *toDomainRequest(model)
	return nil
}

func toRequestModel(req *requestDomain.Request) *RequestModel {
	return &RequestModel{
		ID:          req.ID(),
		Description: req.Description(),
		RequesterID: req.RequesterID(),
		CreatedAt:   req.Created(),
	}
}

func toDomainRequest(m *RequestModel) *requestDomain.Request {
	return requestDomain.Reconstruct(m.ID, m.Description, m.RequesterID, m.CreatedAt)
}

func toDomainRequests(models []RequestModel) []*requestDomain.Request {
	requests := make([]*requestDomain.Request, len(models))
	for i := range models {
		requests[i] = toDomainRequest(&models[i])
	}
	return requests
}
