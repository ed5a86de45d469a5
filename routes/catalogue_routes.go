package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/middleware"
	"github.com/jeil-marcom/site_end/models"
)

// RegisterCatalogueRoutes attaches the catalogue/brochure moderation
// endpoints.
func RegisterCatalogueRoutes(router *gin.Engine, d Deps) {
	group := router.Group("/api/catalogue")
	group.Use(middleware.RequireAuth(d.Tokens))
	if d.AdminRoleRequired {
		group.Use(middleware.RequireRole(models.RoleAdmin))
	}

	group.GET("/get-submissions", d.Catalogues.List)
	group.GET("/get-submission/:id", d.Catalogues.Get)
	group.PUT("/update-status/:id", d.Catalogues.UpdateStatus)
	group.DELETE("/delete-submission/:id", d.Catalogues.Delete)
	group.GET("/statistics", d.Catalogues.Statistics)
}
