package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lendaround/service-sharing/internal/domain"
	itemDomain "github.com/lendaround/service-sharing/internal/domain/item"
	requestDomain "github.com/lendaround/service-sharing/internal/domain/request"
	userDomain "github.com/lendaround/service-sharing/internal/domain/user"
)

// CreateRequestRequest holds the body of a new item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestItemDTO is the compact item projection attached to a request,
// listing the items offered in answer to it.
type RequestItemDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

// RequestDTO is the response representation of an item request.
type RequestDTO struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	RequesterID int64            `json:"requesterId"`
	Created     time.Time        `json:"created"`
	Items       []RequestItemDTO `json:"items"`
}

// RequestService implements use cases around item requests: wishes posted by
// users looking to borrow something nobody has listed yet.
type RequestService struct {
	requests requestDomain.Repository
	items    itemDomain.Repository
	users    userDomain.Repository
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		logger:   logger,
	}
}

// CreateRequest posts a new item request on behalf of the given user.
func (s *RequestService) CreateRequest(ctx context.Context, requesterID int64, req CreateRequestRequest) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	r, err := requestDomain.NewRequest(requesterID, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	s.logger.Info("item request created",
		zap.Int64("request_id", r.ID()),
		zap.Int64("requester_id", requesterID),
	)
	result := toRequestDTO(r, nil)
	return &result, nil
}

// GetOwnRequests lists the user's requests, newest first, each with the
// items offered in answer.
func (s *RequestService) GetOwnRequests(ctx context.Context, requesterID int64, page domain.Page) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByRequester(ctx, requesterID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list own requests: %w", err)
	}
	return s.toRequestDTOs(ctx, requests)
}

// GetOtherRequests lists requests posted by other users, newest first, so
// the caller can find wishes their items could fulfil.
func (s *RequestService) GetOtherRequests(ctx context.Context, callerID int64, page domain.Page) ([]RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, callerID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByOthers(ctx, callerID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list other requests: %w", err)
	}
	return s.toRequestDTOs(ctx, requests)
}

// GetRequest retrieves a single request with its offered items. Any
// registered user may view any request.
func (s *RequestService) GetRequest(ctx context.Context, requestID, callerID int64) (*RequestDTO, error) {
	if _, err := s.users.FindByID(ctx, callerID); err != nil {
		return nil, err
	}

	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	itemsByRequest, err := s.items.FindByRequests(ctx, []int64{r.ID()})
	if err != nil {
		return nil, fmt.Errorf("failed to load items for request: %w", err)
	}
	result := toRequestDTO(r, itemsByRequest[r.ID()])
	return &result, nil
}

func (s *RequestService) toRequestDTOs(ctx context.Context, requests []*requestDomain.Request) ([]RequestDTO, error) {
	requestIDs := make([]int64, len(requests))
	for i, r := range requests {
		requestIDs[i] = r.ID()
	}
	itemsByRequest, err := s.items.FindByRequests(ctx, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for requests: %w", err)
	}

	dtos := make([]RequestDTO, len(requests))
	for i, r := range requests {
		dtos[i] = toRequestDTO(r, itemsByRequest[r.ID()])
	}
	return dtos, nil
}

func toRequestDTO(r *requestDomain.Request, items []*itemDomain.Item) RequestDTO {
	itemDTOs := make([]RequestItemDTO, len(items))
	for i, it := range items {
		itemDTOs[i] = RequestItemDTO{
			ID:      it.ID(),
			Name:    it.Name(),
			OwnerID: it.OwnerID(),
		}
	}
	return RequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		RequesterID: r.RequesterID(),
		Created:     r.Created(),
		Items:       itemDTOs,
	}
}
