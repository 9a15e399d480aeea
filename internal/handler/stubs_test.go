package handler

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

// Canned-value repository stubs for routing tests. Handler tests exercise
// the HTTP boundary; the rule-engine branches live in the application
// package tests.

type stubBookingRepo struct {
	booking  *bookingDomain.Booking
	bookings []*bookingDomain.Booking
	err      error
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	if s.booking == nil && s.err == nil {
		return nil, domain.NewNotFoundError("booking", id)
	}
	return s.booking, s.err
}
func (s *stubBookingRepo) FindByBooker(ctx context.Context, bookerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return s.bookings, s.err
}
func (s *stubBookingRepo) FindByOwner(ctx context.Context, ownerID int64, state bookingDomain.State, now time.Time, page domain.Page) ([]*bookingDomain.Booking, error) {
	return s.bookings, s.err
}
func (s *stubBookingRepo) FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*bookingDomain.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) HasCompletedApproved(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	return false, nil
}
func (s *stubBookingRepo) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	if s.err != nil {
		return s.err
	}
	*bk = *bookingDomain.Reconstruct(100, bk.ItemID(), bk.BookerID(), bk.Start(), bk.End(), bk.Status(), bk.Version(), bk.CreatedAt(), bk.UpdatedAt())
	return nil
}
func (s *stubBookingRepo) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	return s.err
}

type stubItemRepo struct {
	item  *itemDomain.Item
	items []*itemDomain.Item
	err   error
}

func (s *stubItemRepo) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	if s.item == nil && s.err == nil {
		return nil, domain.NewNotFoundError("item", id)
	}
	return s.item, s.err
}
func (s *stubItemRepo) FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*itemDomain.Item, error) {
	return s.items, s.err
}
func (s *stubItemRepo) FindByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*itemDomain.Item, error) {
	return map[int64][]*itemDomain.Item{}, nil
}
func (s *stubItemRepo) Search(ctx context.Context, text string, page domain.Page) ([]*itemDomain.Item, error) {
	return s.items, s.err
}
func (s *stubItemRepo) Save(ctx context.Context, i *itemDomain.Item) error {
	if s.err != nil {
		return s.err
	}
	*i = *itemDomain.Reconstruct(10, i.Name(), i.Description(), i.Available(), i.OwnerID(), i.RequestID(), i.CreatedAt(), i.UpdatedAt())
	return nil
}
func (s *stubItemRepo) Update(ctx context.Context, i *itemDomain.Item) error {
	return s.err
}

type stubCommentRepo struct{}

func (s *stubCommentRepo) FindByItem(ctx context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	return nil, nil
}
func (s *stubCommentRepo) FindByItems(ctx context.Context, itemIDs []int64) (map[int64][]*itemDomain.Comment, error) {
	return map[int64][]*itemDomain.Comment{}, nil
}
func (s *stubCommentRepo) Save(ctx context.Context, c *itemDomain.Comment) error {
	return nil
}

type stubUserRepo struct {
	user  *userDomain.User
	users []*userDomain.User
	err   error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	if s.user == nil && s.err == nil {
		return nil, domain.NewNotFoundError("user", id)
	}
	return s.user, s.err
}
func (s *stubUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return s.user != nil, s.err
}
func (s *stubUserRepo) List(ctx context.Context, page domain.Page) ([]*userDomain.User, error) {
	return s.users, s.err
}
func (s *stubUserRepo) Save(ctx context.Context, u *userDomain.User) error {
	if s.err != nil {
		return s.err
	}
	*u = *userDomain.Reconstruct(1, u.Name(), u.Email(), u.CreatedAt(), u.UpdatedAt())
	return nil
}
func (s *stubUserRepo) Update(ctx context.Context, u *userDomain.User) error {
	return s.err
}
func (s *stubUserRepo) Delete(ctx context.Context, id int64) error {
	return s.err
}

type stubRequestRepo struct {
	request  *requestDomain.Request
	requests []*requestDomain.Request
	err      error
}

func (s *stubRequestRepo) FindByID(ctx context.Context, id int64) (*requestDomain.Request, error) {
	if s.request == nil && s.err == nil {
		return nil, domain.NewNotFoundError("request", id)
	}
	return s.request, s.err
}
func (s *stubRequestRepo) FindByRequester(ctx context.Context, requesterID int64, page domain.Page) ([]*requestDomain.Request, error) {
	return s.requests, s.err
}
func (s *stubRequestRepo) FindByOthers(ctx context.Context, userID int64, page domain.Page) ([]*requestDomain.Request, error) {
	return s.requests, s.err
}
func (s *stubRequestRepo) Save(ctx context.Context, r *requestDomain.Request) error {
	if s.err != nil {
		return s.err
	}
	*r = *requestDomain.Reconstruct(7, r.Description(), r.RequesterID(), r.Created())
	return nil
}

type stubPublisher struct{}

func (s *stubPublisher) PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error {
	return nil
}
