package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/middleware"
)

// RegisterAuthRoutes attaches login and logout.
func RegisterAuthRoutes(router *gin.Engine, d Deps) {
	group := router.Group("/api/auth")

	group.POST("/admin/login", d.Auth.Login)
	group.POST("/logout", middleware.RequireAuth(d.Tokens), d.Auth.Logout)
}
