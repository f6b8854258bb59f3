package api

import (
	"errors"
	"net/http"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/handler/httperr"
	"amenity-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("viewer missing from request context")

func viewerOrAbort(c *gin.Context) (authz.ViewerContext, bool) {
	viewer, ok := middleware.GetViewer(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return authz.ViewerContext{}, false
	}
	return viewer, true
}

func idParamOrAbort(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortBindError(c *gin.Context, err error) {
	// kind errors raised while decoding, e.g. a malformed timestamp, keep their message
	if status, msg := httperr.Classify(err); status < http.StatusInternalServerError {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}

const idempotencyKeyHeader = "Idempotency-Key"

// idempotencyKeyOrAbort returns nil when the optional header is absent.
func idempotencyKeyOrAbort(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return nil, false
	}
	return &key, true
}
