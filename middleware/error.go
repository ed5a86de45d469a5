package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/utils"
)

// ErrorHandler translates errors handlers left on the context into JSON
// responses, unless a response was already written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		if len(c.Errors) > 0 {
			utils.HandleError(c, c.Errors.Last().Err)
		}
	}
}
