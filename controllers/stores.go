package controllers

import (
	"context"

	"github.com/jeil-marcom/site_end/models"
)

// ContactStore is the submission store contract the contact endpoints
// depend on. Satisfied by repository.ContactStore; tests substitute fakes.
type ContactStore interface {
	Create(ctx context.Context, in models.ContactInput, visitorIP string) (*models.ContactSubmission, error)
	ListAll(ctx context.Context) ([]models.ContactSubmission, error)
	GetByID(ctx context.Context, id string) (*models.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, in models.StatusUpdateInput) (*models.ContactSubmission, error)
	DeleteByID(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (*models.SubmissionStats, error)
}

// CatalogueStore is the same contract over catalogue/brochure requests.
type CatalogueStore interface {
	Create(ctx context.Context, in models.CatalogueInput, visitorIP string) (*models.CatalogueSubmission, error)
	ListAll(ctx context.Context) ([]models.CatalogueSubmission, error)
	GetByID(ctx context.Context, id string) (*models.CatalogueSubmission, error)
	UpdateStatus(ctx context.Context, id string, in models.StatusUpdateInput) (*models.CatalogueSubmission, error)
	DeleteByID(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (*models.SubmissionStats, error)
}

// AdminStore looks up dashboard accounts for login.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}
