package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"warehouse/pkg/response"
)

// Recovery turns a panic into a 500 response envelope
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %v request_id=%s\n%s", rec, GetRequestID(c), debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					response.Error(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"))
			}
		}()
		c.Next()
	}
}
