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

// ContactStore persists contact-form submissions. All operations are
// single-document; consistency is delegated to MongoDB's per-document
// atomicity.
type ContactStore struct {
	coll *mongo.Collection
}

// NewContactStore creates a store over the contact submissions collection.
func NewContactStore(db *mongo.Database) *ContactStore {
	return &ContactStore{coll: db.Collection(ContactSubmissionsCollection)}
}

// Create persists a new submission with the default triage state and
// returns it with its assigned id.
func (s *ContactStore) Create(ctx context.Context, in models.ContactInput, visitorIP string) (*models.ContactSubmission, error) {
	if visitorIP == "" {
		visitorIP = "Unknown"
	}

	submission := models.ContactSubmission{
		Name:           in.Name,
		Email:          in.Email,
		Company:        in.Company,
		Subject:        in.Subject,
		Message:        in.Message,
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

// ListAll returns every submission, newest first.
func (s *ContactStore) ListAll(ctx context.Context) ([]models.ContactSubmission, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.ContactSubmission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

// GetByID fetches one submission. Unknown and malformed ids both return
// ErrNotFound.
func (s *ContactStore) GetByID(ctx context.Context, id string) (*models.ContactSubmission, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var submission models.ContactSubmission
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
func (s *ContactStore) UpdateStatus(ctx context.Context, id string, in models.StatusUpdateInput) (*models.ContactSubmission, error) {
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
	var updated models.ContactSubmission
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes one submission.
func (s *ContactStore) DeleteByID(ctx context.Context, id string) error {
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
func (s *ContactStore) CountByStatus(ctx context.Context) (*models.SubmissionStats, error) {
	return countByStatus(ctx, s.coll)
}

// countByStatus is shared by both submission stores.
func countByStatus(ctx context.Context, coll *mongo.Collection) (*models.SubmissionStats, error) {
	stats := &models.SubmissionStats{}

	var err error
	if stats.Total, err = coll.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if stats.Pending, err = coll.CountDocuments(ctx, bson.M{"followupStatus": models.StatusPending}); err != nil {
		return nil, err
	}
	if stats.Contacted, err = coll.CountDocuments(ctx, bson.M{"followupStatus": models.StatusContacted}); err != nil {
		return nil, err
	}
	if stats.NoResponse, err = coll.CountDocuments(ctx, bson.M{"followupStatus": models.StatusNoResponse}); err != nil {
		return nil, err
	}
	if stats.Read, err = coll.CountDocuments(ctx, bson.M{"followupStatus": models.StatusRead}); err != nil {
		return nil, err
	}

	return stats, nil
}
