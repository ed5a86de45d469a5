package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowupStatus tracks the manual triage state of a submission.
type FollowupStatus string

const (
	StatusRead       FollowupStatus = "Read"
	StatusPending    FollowupStatus = "Pending"
	StatusContacted  FollowupStatus = "Contacted"
	StatusNoResponse FollowupStatus = "No Response"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s FollowupStatus) IsValid() bool {
	switch s {
	case StatusRead, StatusPending, StatusContacted, StatusNoResponse:
		return true
	}
	return false
}

// ContactSubmission is a stored contact-form message.
type ContactSubmission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Company        string             `bson:"company" json:"company"`
	Subject        string             `bson:"subject" json:"subject"`
	Message        string             `bson:"message" json:"message"`
	VisitorIP      string             `bson:"visitorIP" json:"visitorIP"`
	FollowupStatus FollowupStatus     `bson:"followupStatus" json:"followupStatus"`
	IsSpam         bool               `bson:"isSpam" json:"isSpam"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ContactInput is the contact form payload.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// CatalogueSubmission is a stored catalogue-download or brochure request.
type CatalogueSubmission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	CompanyName    string             `bson:"companyName" json:"companyName"`
	Email          string             `bson:"email" json:"email"`
	ContactNumber  string             `bson:"contactNumber" json:"contactNumber"`
	City           string             `bson:"city" json:"city"`
	State          string             `bson:"state" json:"state"`
	Country        string             `bson:"country" json:"country"`
	ProductName    string             `bson:"productName" json:"productName"`
	URL            string             `bson:"url" json:"url"`
	VisitorIP      string             `bson:"visitorIP" json:"visitorIP"`
	FollowupStatus FollowupStatus     `bson:"followupStatus" json:"followupStatus"`
	IsSpam         bool               `bson:"isSpam" json:"isSpam"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// CatalogueInput is the catalogue/brochure request payload.
type CatalogueInput struct {
	Name          string `json:"name" binding:"required"`
	CompanyName   string `json:"companyName" binding:"required"`
	Email         string `json:"email" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Country       string `json:"country" binding:"required"`
	ProductName   string `json:"productName" binding:"required"`
	URL           string `json:"url" binding:"required"`
}

// StatusUpdateInput carries a partial triage update. Nil fields are left
// untouched on the stored document.
type StatusUpdateInput struct {
	FollowupStatus *FollowupStatus `json:"followupStatus"`
	IsSpam         *bool           `json:"isSpam"`
}

// SubmissionStats is the per-status breakdown of a collection.
type SubmissionStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Contacted  int64 `json:"contacted"`
	NoResponse int64 `json:"noResponse"`
	Read       int64 `json:"read"`
}
