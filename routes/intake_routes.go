package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterIntakeRoutes attaches the public form endpoints.
func RegisterIntakeRoutes(router *gin.Engine, d Deps) {
	router.POST("/api/contact", d.Intake.SubmitContact)
	router.POST("/api/download-catalogue", d.Intake.DownloadCatalogue)
	router.POST("/api/request-brochure", d.Intake.RequestBrochure)
}
