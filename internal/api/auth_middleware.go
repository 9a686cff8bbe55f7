package api

import (
	"net/http"
	"strconv"

	"github.com/fizennn/Seejam-Server/internal/constants"

	"github.com/gin-gonic/gin"
)

const ctxKeyUserID = "userID"

// AuthRequired resolves the acting user from the X-User-ID header set by
// the authenticating gateway in front of this service. Session issuance
// and token validation live there; this service only needs the identity.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(constants.HeaderUserID)
		id, err := strconv.ParseUint(raw, 10, 64)
		if raw == "" || err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		c.Set(ctxKeyUserID, uint(id))
		c.Next()
	}
}
