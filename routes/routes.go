package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/controllers"
	"github.com/jeil-marcom/site_end/utils"
)

// Deps carries the wired controllers and auth machinery into route
// registration.
type Deps struct {
	Intake     *controllers.IntakeController
	Contacts   *controllers.ContactSubmissionController
	Catalogues *controllers.CatalogueSubmissionController
	Auth       *controllers.AuthController

	Tokens *utils.TokenManager
	// AdminRoleRequired additionally gates management routes on the admin
	// role claim.
	AdminRoleRequired bool
}

// RegisterRoutes attaches every endpoint to the router.
func RegisterRoutes(router *gin.Engine, d Deps) {
	RegisterAuthRoutes(router, d)
	RegisterIntakeRoutes(router, d)
	RegisterContactSubmissionRoutes(router, d)
	RegisterCatalogueRoutes(router, d)

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})
}
