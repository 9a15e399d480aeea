package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lendaround/service-sharing/internal/domain"
)

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 with the message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a domain error to its HTTP status. Forbidden deliberately maps
// to 404 rather than 403 so the response does not confirm the existence of a
// resource the caller has no relationship with. Anything unclassified is a
// 500 with the detail withheld.
func Error(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindForbidden:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.KindValidation, domain.KindNotAvailable, domain.KindInvalidState,
		domain.KindUnknownState, domain.KindNotAllowed:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
