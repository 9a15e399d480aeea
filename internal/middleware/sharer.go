package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SharerIDHeader carries the caller's claimed user identity. No
// authentication is performed: any caller may claim any id, and the
// authorization rules downstream operate purely on the claimed id.
const SharerIDHeader = "X-Sharer-User-Id"

const sharerIDKey = "sharerID"

// RequireSharerID rejects requests whose identity header is absent,
// malformed, or non-positive. A missing identity is a 400, not a 401.
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": SharerIDHeader + " header is required"})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": SharerIDHeader + " header must be a positive integer"})
			return
		}
		c.Set(sharerIDKey, id)
		c.Next()
	}
}

// GetSharerID returns the claimed caller id stored by RequireSharerID.
func GetSharerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(sharerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
