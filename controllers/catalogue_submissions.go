package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/models"
	"github.com/jeil-marcom/site_end/repository"
	"github.com/jeil-marcom/site_end/utils"
)

// CatalogueSubmissionController exposes the moderation endpoints over
// catalogue/brochure requests. Deliberately parallel to the contact
// controller; the two collections are independent.
type CatalogueSubmissionController struct {
	store CatalogueStore
}

// NewCatalogueSubmissionController wires the catalogue moderation endpoints.
func NewCatalogueSubmissionController(store CatalogueStore) *CatalogueSubmissionController {
	return &CatalogueSubmissionController{store: store}
}

// List handles GET /api/catalogue/get-submissions.
func (cc *CatalogueSubmissionController) List(c *gin.Context) {
	submissions, err := cc.store.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// Get handles GET /api/catalogue/get-submission/:id.
func (cc *CatalogueSubmissionController) Get(c *gin.Context) {
	submission, err := cc.store.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		utils.HandleError(c, utils.CreateNotFoundError("Submission"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

// UpdateStatus handles PUT /api/catalogue/update-status/:id.
func (cc *CatalogueSubmissionController) UpdateStatus(c *gin.Context) {
	var input models.StatusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.HandleError(c, utils.CreateBadRequestError("Invalid request body"))
		return
	}
	if input.FollowupStatus != nil && !input.FollowupStatus.IsValid() {
		utils.HandleError(c, utils.CreateBadRequestError("Invalid followup status"))
		return
	}

	submission, err := cc.store.UpdateStatus(c.Request.Context(), c.Param("id"), input)
	if errors.Is(err, repository.ErrNotFound) {
		utils.HandleError(c, utils.CreateNotFoundError("Submission"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submission": submission})
}

// Delete handles DELETE /api/catalogue/delete-submission/:id.
func (cc *CatalogueSubmissionController) Delete(c *gin.Context) {
	err := cc.store.DeleteByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		utils.HandleError(c, utils.CreateNotFoundError("Submission"))
		return
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.SuccessResponse(c, nil, "Submission deleted successfully")
}

// Statistics handles GET /api/catalogue/statistics.
func (cc *CatalogueSubmissionController) Statistics(c *gin.Context) {
	stats, err := cc.store.CountByStatus(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
