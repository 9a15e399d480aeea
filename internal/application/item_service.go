package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lendaround/service-sharing/internal/domain"
	bookingDomain "github.com/lendaround/service-sharing/internal/domain/booking"
	itemDomain "github.com/lendaround/service-sharing/internal/domain/item"
	requestDomain "github.com/lendaround/service-sharing/internal/domain/request"
	userDomain "github.com/lendaround/service-sharing/internal/domain/user"
	"github.com/lendaround/service-sharing/internal/events"
	"github.com/lendaround/service-sharing/internal/kafka"
)

// CreateItemRequest holds the data needed to list a new item for lending.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is a partial update: nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// AddCommentRequest holds the body of a comment on an item.
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// BookingShortDTO is the compact booking projection attached to an item for
// its owner.
type BookingShortDTO struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the response representation of an item. LastBooking and
// NextBooking are populated only when the caller owns the item.
type ItemDTO struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	OwnerID     int64            `json:"ownerId"`
	RequestID   *int64           `json:"requestId,omitempty"`
	LastBooking *BookingShortDTO `json:"lastBooking,omitempty"`
	NextBooking *BookingShortDTO `json:"nextBooking,omitempty"`
	Comments    []CommentDTO     `json:"comments"`
}

// ItemService implements use cases for item management, search and comments.
type ItemService struct {
	items    itemDomain.Repository
	comments itemDomain.CommentRepository
	bookings bookingDomain.Repository
	users    userDomain.Repository
	requests requestDomain.Repository
	producer EventPublisher
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.Repository,
	users userDomain.Repository,
	requests requestDomain.Repository,
	producer EventPublisher,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
		requests: requests,
		producer: producer,
		logger:   logger,
	}
}

// CreateItem lists a new item owned by the given user, optionally fulfilling
// an item request.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.Info("item created",
		zap.Int64("item_id", it.ID()),
		zap.Int64("owner_id", ownerID),
	)
	result := toItemDTO(it, nil)
	return &result, nil
}

// UpdateItem applies a partial update. Only the item's owner may mutate it.
func (s *ItemService) UpdateItem(ctx context.Context, itemID, callerID int64, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(callerID) {
		return nil, domain.NewForbiddenError(fmt.Sprintf("user with id=%d does not own item with id=%d", callerID, itemID))
	}

	if err := it.Update(req.Name, req.Description, req.Available); err != nil {
		return nil, err
	}
	if err := s.items.Update(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	result := toItemDTO(it, nil)
	return &result, nil
}

// GetItem retrieves a single item. The booking projection (last/next) is a
// read-time enrichment visible to the owner only; comments are visible to
// everyone.
func (s *ItemService) GetItem(ctx context.Context, itemID, callerID int64) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	commentDTOs, err := s.toCommentDTOs(ctx, comments)
	if err != nil {
		return nil, err
	}

	result := toItemDTO(it, commentDTOs)
	if it.IsOwnedBy(callerID) {
		if err := s.attachBookingProjection(ctx, &result); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// GetOwnerItems lists the user's items with the owner-only booking
// projection and comments.
func (s *ItemService) GetOwnerItems(ctx context.Context, ownerID int64, page domain.Page) ([]ItemDTO, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("user", ownerID)
	}

	items, err := s.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner items: %w", err)
	}

	itemIDs := make([]int64, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID()
	}
	commentsByItem, err := s.comments.FindByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		commentDTOs, err := s.toCommentDTOs(ctx, commentsByItem[it.ID()])
		if err != nil {
			return nil, err
		}
		dtos[i] = toItemDTO(it, commentDTOs)
		if err := s.attachBookingProjection(ctx, &dtos[i]); err != nil {
			return nil, err
		}
	}
	return dtos, nil
}

// SearchItems performs a case-insensitive substring search over available
// items. A blank query deliberately short-circuits to an empty result set.
func (s *ItemService) SearchItems(ctx context.Context, text string, page domain.Page) ([]ItemDTO, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.Search(ctx, text, page)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toItemDTO(it, nil)
	}
	return dtos, nil
}

// AddComment stores feedback on an item. Only a user with a completed
// (APPROVED, fully elapsed) booking of the item may comment.
func (s *ItemService) AddComment(ctx context.Context, itemID, authorID int64, req AddCommentRequest) (*CommentDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	completed, err := s.bookings.HasCompletedApproved(ctx, itemID, authorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to check completed bookings: %w", err)
	}
	if !completed {
		return nil, domain.NewNotAllowedError(fmt.Sprintf("user with id=%d never completed a rental of item with id=%d", authorID, itemID))
	}

	comment, err := itemDomain.NewComment(it.ID(), author.ID(), req.Text)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	evt := events.CommentAddedEvent{
		CommentID:  comment.ID(),
		ItemID:     it.ID(),
		AuthorID:   author.ID(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicItemEvents, events.CommentAdded, evt)

	return &CommentDTO{
		ID:         comment.ID(),
		Text:       comment.Text(),
		AuthorID:   author.ID(),
		AuthorName: author.Name(),
		Created:    comment.Created(),
	}, nil
}

func (s *ItemService) attachBookingProjection(ctx context.Context, dto *ItemDTO) error {
	now := time.Now().UTC()

	last, err := s.bookings.FindLastForItem(ctx, dto.ID, now)
	if err != nil {
		return err
	}
	next, err := s.bookings.FindNextForItem(ctx, dto.ID, now)
	if err != nil {
		return err
	}

	dto.LastBooking = toBookingShortDTO(last)
	dto.NextBooking = toBookingShortDTO(next)
	return nil
}

func (s *ItemService) toCommentDTOs(ctx context.Context, comments []*itemDomain.Comment) ([]CommentDTO, error) {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		author, err := s.users.FindByID(ctx, c.AuthorID())
		if err != nil {
			return nil, err
		}
		dtos[i] = CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorID:   c.AuthorID(),
			AuthorName: author.Name(),
			Created:    c.Created(),
		}
	}
	return dtos, nil
}

func (s *ItemService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
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

func toItemDTO(it *itemDomain.Item, comments []CommentDTO) ItemDTO {
	if comments == nil {
		comments = []CommentDTO{}
	}
	return ItemDTO{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
		Comments:    comments,
	}
}

func toBookingShortDTO(bk *bookingDomain.Booking) *BookingShortDTO {
	if bk == nil {
		return nil
	}
	return &BookingShortDTO{
		ID:       bk.ID(),
		BookerID: bk.BookerID(),
		Start:    bk.Start(),
		End:      bk.End(),
	}
}
