package application

import (
	"context"
	"time"

	"github.com/lendaround/service-sharing/internal/domain"
	bookingDomain "github.com/lendaround/service-sharing/internal/domain/booking"
	itemDomain "github.com/lendaround/service-sharing/internal/domain/item"
	requestDomain "github.com/lendaround/service-sharing/internal/domain/request"
	userDomain "github.com/lendaround/service-sharing/internal/domain/user"
	"github.com/lendaround/service-sharing/internal/kafka"
)

// --- Mock booking repository ---

type mockBookingRepo struct {
	findByIDFn             func(ctx context.Context, id int64) (*bookingDomain.Booking, error)
	findByBookerFn         func(ctx context.Context, bookerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error)
	findByOwnerFn          func(ctx context.Context, ownerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error)
	findLastForItemFn      func(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error)
	findNextForItemFn      func(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error)
	hasCompletedApprovedFn func(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
	saveFn                 func(ctx context.Context, bk *bookingDomain.Booking) error
	updateFn               func(ctx context.Context, bk *bookingDomain.Booking) error
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByBooker(ctx context.Context, bookerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return m.findByBookerFn(ctx, bookerID, state, now, page)
}
func (m *mockBookingRepo) FindByOwner(ctx context.Context, ownerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return m.findByOwnerFn(ctx, ownerID, state, now, page)
}
func (m *mockBookingRepo) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	if m.findLastForItemFn == nil {
		return nil, nil
	}
	return m.findLastForItemFn(ctx, itemID, now)
}
func (m *mockBookingRepo) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	if m.findNextForItemFn == nil {
		return nil, nil
	}
	return m.findNextForItemFn(ctx, itemID, now)
}
func (m *mockBookingRepo) HasCompletedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	return m.hasCompletedApprovedFn(ctx, itemID, bookerID, now)
}
func (m *mockBookingRepo) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	return m.saveFn(ctx, bk)
}
func (m *mockBookingRepo) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	return m.updateFn(ctx, bk)
}

// --- Mock item repository ---

type mockItemRepo struct {
	findByIDFn       func(ctx context.Context, id int64) (*itemDomain.Item, error)
	findByOwnerFn    func(ctx context.Context, ownerID int64, page domain.Page) ([]*itemDomain.Item, error)
	findByRequestsFn func(ctx context.Context, requestIDs []int64) (map[int64][]*itemDomain.Item, error)
	searchFn         func(ctx context.Context, text string, page domain.Page) ([]*itemDomain.Item, error)
	saveFn           func(ctx context.Context, i *itemDomain.Item) error
	updateFn         func(ctx context.Context, i *itemDomain.Item) error
}

func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockItemRepo) FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*itemDomain.Item, error) {
	return m.findByOwnerFn(ctx, ownerID, page)
}
func (m *mockItemRepo) FindByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*itemDomain.Item, error) {
	if m.findByRequestsFn == nil {
		return map[int64][]*itemDomain.Item{}, nil
	}
	return m.findByRequestsFn(ctx, requestIDs)
}
func (m *mockItemRepo) Search(ctx context.Context, text string, page domain.Page) ([]*itemDomain.Item, error) {
	return m.searchFn(ctx, text, page)
}
func (m *mockItemRepo) Save(ctx context.Context, i *itemDomain.Item) error {
	return m.saveFn(ctx, i)
}
func (m *mockItemRepo) Update(ctx context.Context, i *itemDomain.Item) error {
	return m.updateFn(ctx, i)
}

// --- Mock comment repository ---

type mockCommentRepo struct {
	findByItemFn  func(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error)
	findByItemsFn func(ctx context.Context, itemIDs []int64) (map[int64][]*itemDomain.Comment, error)
	saveFn        func(ctx context.Context, c *itemDomain.Comment) error
}

func (m *mockCommentRepo) FindByItem(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	if m.findByItemFn == nil {
		return nil, nil
	}
	return m.findByItemFn(ctx, itemID)
}
func (m *mockCommentRepo) FindByItems(ctx context.Context, itemIDs []int64) (map[int64][]*itemDomain.Comment, error) {
	if m.findByItemsFn == nil {
		return map[int64][]*itemDomain.Comment{}, nil
	}
	return m.findByItemsFn(ctx, itemIDs)
}
func (m *mockCommentRepo) Save(ctx context.Context, c *itemDomain.Comment) error {
	return m.saveFn(ctx, c)
}

// --- Mock user repository ---

type mockUserRepo struct {
	findByIDFn func(ctx context.Context, id int64) (*userDomain.User, error)
	existsFn   func(ctx context.Context, id int64) (bool, error)
	listFn     func(ctx context.Context, page domain.Page) ([]*userDomain.User, error)
	saveFn     func(ctx context.Context, u *userDomain.User) error
	updateFn   func(ctx context.Context, u *userDomain.User) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}
func (m *mockUserRepo) List(ctx context.Context, page domain.Page) ([]*userDomain.User, error) {
	return m.listFn(ctx, page)
}
func (m *mockUserRepo) Save(ctx context.Context, u *userDomain.User) error {
	return m.saveFn(ctx, u)
}
func (m *mockUserRepo) Update(ctx context.Context, u *userDomain.User) error {
	return m.updateFn(ctx, u)
}
func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// --- Mock request repository ---

type mockRequestRepo struct {
	findByIDFn        func(ctx context.Context, id int64) (*requestDomain.Request, error)
	findByRequesterFn func(ctx context.Context, requesterID int64, page domain.Page) ([]*requestDomain.Request, error)
	findByOthersFn    func(ctx context.Context, userID int64, page domain.Page) ([]*requestDomain.Request, error)
	saveFn            func(ctx context.Context, r *requestDomain.Request) error
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id int64) (*requestDomain.Request, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRequestRepo) FindByRequester(ctx context.Context, requesterID int64, page domain.Page) ([]*requestDomain.Request, error) {
	return m.findByRequesterFn(ctx, requesterID, page)
}
func (m *mockRequestRepo) FindByOthers(ctx context.Context, userID int64, page domain.Page) ([]*requestDomain.Request, error) {
	return m.findByOthersFn(ctx, userID, page)
}
func (m *mockRequestRepo) Save(ctx context.Context, r *requestDomain.Request) error {
	return m.saveFn(ctx, r)
}

// --- Mock event publisher ---

type publishedEvent struct {
	Topic string
	Event kafka.CloudEvent
}

type mockPublisher struct {
	published []publishedEvent
	err       error
}

func (m *mockPublisher) PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, publishedEvent{Topic: topic, Event: event})
	return nil
}
