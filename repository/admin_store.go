package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jeil-marcom/site_end/models"
)

// AdminStore looks up moderation dashboard accounts.
type AdminStore struct {
	coll *mongo.Collection
}

// NewAdminStore creates a store over the admin users collection.
func NewAdminStore(db *mongo.Database) *AdminStore {
	return &AdminStore{coll: db.Collection(AdminUsersCollection)}
}

// FindByEmail returns the account registered under email, or ErrNotFound.
func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
