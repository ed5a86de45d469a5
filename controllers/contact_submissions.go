package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeil-marcom/site_end/models"
	"github.com/jeil-marcom/site_end/repository"
	"github.com/jeil-marcom/site_end/utils"
)

// ContactSubmissionController exposes the moderation endpoints over
// contact-form submissions.
type ContactSubmissionController struct {
	store ContactStore
}

// NewContactSubmissionController wires the contact moderation endpoints.
func NewContactSubmissionController(store ContactStore) *ContactSubmissionController {
	return &ContactSubmissionController{store: store}
}

// List handles GET /api/contact-submissions/get-submissions.
func (cc *ContactSubmissionController) List(c *gin.Context) {
	submissions, err := cc.store.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// Get handles GET /api/contact-submissions/get-submission/:id.
func (cc *ContactSubmissionController) Get(c *gin.Context) {
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

// UpdateStatus handles PUT /api/contact-submissions/update-status/:id.
func (cc *ContactSubmissionController) UpdateStatus(c *gin.Context) {
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

// Delete handles DELETE /api/contact-submissions/delete-submission/:id.
func (cc *ContactSubmissionController) Delete(c *gin.Context) {
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

// Statistics handles GET /api/contact-submissions/statistics.
func (cc *ContactSubmissionController) Statistics(c *gin.Context) {
	stats, err := cc.store.CountByStatus(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
