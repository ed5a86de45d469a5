package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jeil-marcom/site_end/models"
)

// CatalogueStore persists catalogue-download and brochure requests. Both
// intake endpoints write to the same collection.
type CatalogueStore struct {
	coll *mongo.Collection
}

// NewCatalogueStore creates a store over the catalogue submissions collection.
func NewCatalogueStore(db *mongo.Database) *CatalogueStore {
	return &CatalogueStore{coll: db.Collection(CatalogueSubmissionsCollection)}
}

// Create persists a new request with the default triage state and returns
// it with its assigned id.
func (s *CatalogueStore) Create(ctx context.Context, in models.CatalogueInput, visitorIP string) (*models.CatalogueSubmission, error) {
	if visitorIP == "" {
		visitorIP = "Unknown"
	}

	submission := models.CatalogueSubmission{
		Name:           in.Name,
		CompanyName:    in.CompanyName,
		Email:          in.Email,
		ContactNumber:  in.ContactNumber,
		City:           in.City,
		State:          in.State,
		Country:        in.Country,
		ProductName:    in.ProductName,
		URL:            in.URL,
		VisitorIP:      visitorIP,
		FollowupStatus: models.StatusPending,
		IsSpam:         false,
		CreatedAt:      time.Now(),
	}

	result, err := s.coll.InsertOne(ctx, submission)
	if err != nil {
		return nil, err
	}

	submission.ID = result.InsertedID.(primitive.ObjectID)
	return &submission, nil
}

// ListAll returns every request, newest first.
func (s *CatalogueStore) ListAll(ctx context.Context) ([]models.CatalogueSubmission, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.CatalogueSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetByID fetches one request. Unknown and malformed ids both return
// ErrNotFound.
func (s *CatalogueStore) GetByID(ctx context.Context, id string) (*models.CatalogueSubmission, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var submission models.CatalogueSubmission
	err = s.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&submission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// UpdateStatus applies a partial triage update and returns the updated
// document. Fields absent from the input are left untouched.
func (s *CatalogueStore) UpdateStatus(ctx context.Context, id string, in models.StatusUpdateInput) (*models.CatalogueSubmission, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if in.FollowupStatus != nil {
		set["followupStatus"] = *in.FollowupStatus
	}
	if in.IsSpam != nil {
		set["isSpam"] = *in.IsSpam
	}
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.CatalogueSubmission
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes one request.
func (s *CatalogueStore) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the total and the per-status counts.
func (s *CatalogueStore) CountByStatus(ctx context.Context) (*models.SubmissionStats, error) {
	return countByStatus(ctx, s.coll)
}
