package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"warehouse/internal/service"
	"warehouse/pkg/apperror"
	"warehouse/pkg/response"
)

const (
	UserIDHeader = "X-User-ID"
	userIDKey    = "userID"
)

// Actor reads the acting user id set by the upstream gateway and stores it on
// the request context for the audit trail. Requests without the header pass through.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			c.Next()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "VALIDATION_ERROR",
				"Invalid "+UserIDHeader+" header",
				apperror.FieldError{Field: UserIDHeader, Message: "must be a valid UUID"}))
			return
		}

		c.Set(userIDKey, id)
		c.Request = c.Request.WithContext(service.WithActor(c.Request.Context(), id))
		c.Next()
	}
}

// GetUserID returns the actor stored by Actor
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
