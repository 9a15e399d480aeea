package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lendaround/service-sharing/internal/application"
	"github.com/lendaround/service-sharing/internal/middleware"
	"github.com/lendaround/service-sharing/internal/response"
)

// RequestHandler handles HTTP requests for item request operations.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all item request routes on the given router
// group. Every route requires the caller's identity header.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.RequireSharerID())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.GetOwnRequests)
		requests.GET("/all", h.GetOtherRequests)
		requests.GET("/:requestId", h.GetRequest)
	}
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	var req application.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRequest(c.Request.Context(), requesterID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetOwnRequests handles GET /requests.
func (h *RequestHandler) GetOwnRequests(c *gin.Context) {
	requesterID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetOwnRequests(c.Request.Context(), requesterID, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOtherRequests handles GET /requests/all?from=&size=.
func (h *RequestHandler) GetOtherRequests(c *gin.Context) {
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

	result, err := h.service.GetOtherRequests(c.Request.Context(), callerID, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRequest handles GET /requests/:requestId.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	requestID, err := parseID(c, "requestId")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetRequest(c.Request.Context(), requestID, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
