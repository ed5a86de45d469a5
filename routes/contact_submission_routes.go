package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/middleware"
	"github.com/jeil-marcom/site_end/models"
)

// RegisterContactSubmissionRoutes attaches the contact moderation endpoints.
func RegisterContactSubmissionRoutes(router *gin.Engine, d Deps) {
	group := router.Group("/api/contact-submissions")
	group.Use(middleware.RequireAuth(d.Tokens))
	if d.AdminRoleRequired {
		group.Use(middleware.RequireRole(models.RoleAdmin))
	}

	group.GET("/get-submissions", d.Contacts.List)
	group.GET("/get-submission/:id", d.Contacts.Get)
	group.PUT("/update-status/:id", d.Contacts.UpdateStatus)
	group.DELETE("/delete-submission/:id", d.Contacts.Delete)
	group.GET("/statistics", d.Contacts.Statistics)
}
