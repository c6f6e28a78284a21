package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the handler chain has finished
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		line := "%s %s %d %s request_id=%s"
		args := []interface{}{c.Request.Method, path, c.Writer.Status(), time.Since(start), GetRequestID(c)}
		if len(c.Errors) > 0 {
			line += " errors=%q"
			args = append(args, c.Errors.String())
		}
		log.Printf(line, args...)
	}
}
