package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fizennn/Seejam-Server/internal/apperr"
	"github.com/fizennn/Seejam-Server/internal/constants"
	"github.com/fizennn/Seejam-Server/internal/logging"

	"github.com/gin-gonic/gin"
)

// statusForKind maps the service error taxonomy to HTTP status codes.
func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidArgument:
		return http.StatusBadRequest
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindInvalidState, apperr.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes a JSON error response for a service failure. Internal
// errors are logged and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) && e.Kind != apperr.KindInternal {
		c.JSON(statusForKind(e.Kind), gin.H{constants.JSONKeyError: e.Message})
		return
	}
	logging.Error("request failed", err, logging.Fields{constants.LogFieldErrorKind: string(apperr.KindOf(err))})
	c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: "Internal server error"})
}

// paramUint parses a positive integer path parameter.
func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// sessionUserID returns the authenticated user id placed on the context by
// the auth middleware.
func sessionUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
