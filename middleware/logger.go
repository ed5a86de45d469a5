package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/utils"
)

// Logger records every request with its status and duration. Bodies are not
// logged; submissions carry visitor contact details.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		event := utils.Logger.Info()
		if statusCode >= 400 {
			event = utils.Logger.Error()
		}

		event.
			Str("method", method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// Recovery turns panics into a JSON 500 without leaking internals.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
		})
	})
}
