package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lendaround/service-sharing/internal/application"
	"github.com/lendaround/service-sharing/internal/middleware"
	"github.com/lendaround/service-sharing/internal/response"
)

// ItemHandler handles HTTP requests for item operations.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group.
// Search is open to anonymous callers; everything else needs the identity
// header.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	{
		items.GET("/search", h.SearchItems)

		identified := items.Group("")
		identified.Use(middleware.RequireSharerID())
		{
			identified.POST("", h.CreateItem)
			identified.GET("", h.GetOwnerItems)
			identified.GET("/:itemId", h.GetItem)
			identified.PATCH("/:itemId", h.UpdateItem)
			identified.POST("/:itemId/comment", h.AddComment)
		}
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateItem(c.Request.Context(), ownerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateItem handles PATCH /items/:itemId.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateItem(c.Request.Context(), itemID, callerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetItem handles GET /items/:itemId.
func (h *ItemHandler) GetItem(c *gin.Context) {
	callerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetItem(c.Request.Context(), itemID, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOwnerItems handles GET /items?from=&size=.
func (h *ItemHandler) GetOwnerItems(c *gin.Context) {
	ownerID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	page, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetOwnerItems(c.Request.Context(), ownerID, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SearchItems handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) SearchItems(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.SearchItems(c.Request.Context(), c.Query("text"), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddComment handles POST /items/:itemId/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := middleware.GetSharerID(c)
	if !ok {
		response.BadRequest(c, "missing identity header")
		return
	}

	itemID, err := parseID(c, "itemId")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req application.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddComment(c.Request.Context(), itemID, authorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
