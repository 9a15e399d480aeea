package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lendaround/service-sharing/internal/domain"
)

// parseID extracts a positive int64 path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid " + name)
	}
	return id, nil
}

// parsePage extracts the from/size query parameters with defaults and
// validates the bounds.
func parsePage(c *gin.Context) (domain.Page, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return domain.Page{}, domain.NewValidationError("invalid from parameter")
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil {
		return domain.Page{}, domain.NewValidationError("invalid size parameter")
	}
	return domain.NewPage(from, size)
}
