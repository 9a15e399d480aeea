package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lendaround/service-sharing/internal/application"
	"github.com/lendaround/service-sharing/internal/middleware"
	"github.com/lendaround/service-sharing/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
// Every booking route requires the caller's identity header.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireSharerID())
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookerBookings)
		bookings.GET("/owner", h.GetOwnerBookings)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.PATCH("/:bookingId", h.DecideBooking)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	bookerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Start.Before(time.Now()) {
		response.BadRequest(c, "booking start must not be in the past")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), bookerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// DecideBooking handles PATCH /bookings/:bookingId?approved=true|false.
func (h *BookingHandler) DecideBooking(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "invalid approved parameter")
		return
	}

	result, err := h.service.ApproveBooking(c.Request.Context(), callerID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /bookings/:bookingId. Only the booker or the
// item's owner may read it.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	bookingID, err := parseID(c, "bookingId")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBookerBookings handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) GetBookerBookings(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetBookingsForBooker(c.Request.Context(), callerID, c.DefaultQuery("state", "ALL"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOwnerBookings handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetBookingsForOwner(c.Request.Context(), callerID, c.DefaultQuery("state", "ALL"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
