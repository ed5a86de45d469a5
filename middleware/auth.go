package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jeil-marcom/site_end/utils"
)

// RequireAuth verifies the bearer token and attaches its claims to the
// request context. Expired tokens are reported distinctly from other
// invalid ones.
func RequireAuth(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. No token provided.",
				"code":    "MISSING_TOKEN",
			})
			return
		}

		claims, err := tm.ParseToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Token expired. Please login again.",
					"code":    "TOKEN_EXPIRED",
				})
				return
			}

			utils.Logger.Info().Err(err).Str("path", c.Request.URL.Path).Msg("token verification failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token.",
				"code":    "INVALID_TOKEN",
			})
			return
		}

		if claims["id"] == nil || claims["role"] == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token.",
				"code":    "INVALID_TOKEN",
			})
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireRole rejects authenticated identities whose role claim is not in
// the allowed set. Must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.UserFromContext(c)
		if err != nil {
			utils.HandleError(c, utils.CreateUnauthorizedError("Authentication required."))
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.Logger.Info().
			Str("email", user.Email).
			Str("role", user.Role).
			Str("path", c.Request.URL.Path).
			Msg("insufficient privileges")

		utils.HandleError(c, utils.CreateForbiddenError())
		c.Abort()
	}
}

// OptionalAuth attaches claims when a valid token is present and otherwise
// lets the request through with no identity. It never rejects.
func OptionalAuth(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tm.ParseToken(token); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}

	return token, true
}
