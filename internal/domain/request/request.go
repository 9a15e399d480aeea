package request

import (
	"context"
	"strings"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
)

const maxDescriptionLength = 500

// Request is a user's declared need for an item type that other users may
// fulfill by creating matching items.
type Request struct {
	id          int64
	description string
	requesterID int64
	created     time.Time
}

// NewRequest creates a new Request with created set to now.
func NewRequest(requesterID int64, description string) (*Request, error) {
	if requesterID <= 0 {
		return nil, domain.NewValidationError("requester ID is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, domain.NewValidationError("request description must not exceed 500 characters")
	}
	return &Request{
		description: description,
		requesterID: requesterID,
		created:     time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Request from persistence data (no validation).
func Reconstruct(id int64, description string, requesterID int64, created time.Time) *Request {
	return &Request{
		id:          id,
		description: description,
		requesterID: requesterID,
		created:     created,
	}
}

// ID returns the store-assigned identifier (zero until saved).
func (r *Request) ID() int64 { return r.id }

// Description returns what the requester is looking for.
func (r *Request) Description() string { return r.description }

// RequesterID returns the identifier of the user who created the request.
func (r *Request) RequesterID() int64 { return r.requesterID }

// Created returns the creation timestamp.
func (r *Request) Created() time.Time { return r.created }

// Repository defines the persistence contract for item requests.
type Repository interface {
	// FindByID retrieves a request by its identifier.
	FindByID(ctx context.Context, id int64) (*Request, error)

	// FindByRequester retrieves a user's own requests, newest first.
	FindByRequester(ctx context.Context, requesterID int64, page domain.Page) ([]*Request, error)

	// FindByOthers retrieves requests created by everyone except the given
	// user, newest first.
	FindByOthers(ctx context.Context, userID int64, page domain.Page) ([]*Request, error)

	// Save persists a new request and assigns its identifier.
	Save(ctx context.Context, r *Request) error
}
