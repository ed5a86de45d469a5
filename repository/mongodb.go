package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jeil-marcom/site_end/models"
	"github.com/jeil-marcom/site_end/utils"
)

const (
	// Collection names match what mongoose created, so existing data on a
	// deployed site keeps working.
	ContactSubmissionsCollection   = "contactsubmissions"
	CatalogueSubmissionsCollection = "cataloguesubmissions"
	AdminUsersCollection           = "adminusers"
)

// ErrNotFound is returned for unknown ids. Malformed id strings surface the
// same way; management clients treat both identically.
var ErrNotFound = errors.New("document not found")

// Client owns the process-wide MongoDB connection pool. Created once at
// startup and closed on shutdown.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes and pings the MongoDB connection.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return &Client{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Database returns the selected database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		return err
	}
	utils.Logger.Info().Msg("disconnected from MongoDB")
	return nil
}

// InitializeCollections creates the submission and admin collections when
// they do not exist yet.
func InitializeCollections(ctx context.Context, db *mongo.Database) error {
	collections := []string{
		ContactSubmissionsCollection,
		CatalogueSubmissionsCollection,
		AdminUsersCollection,
	}

	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	for _, name := range collections {
		if known[name] {
			continue
		}
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		utils.Logger.Info().Str("collection", name).Msg("created collection")
	}

	return nil
}

// EnsureAdminAccount seeds the default dashboard admin when no admin
// account exists yet.
func EnsureAdminAccount(ctx context.Context, db *mongo.Database, email, password string) error {
	coll := db.Collection(AdminUsersCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.AdminUser{
		Name:      "Administrator",
		Email:     email,
		Password:  hash,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}

	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	utils.Logger.Info().Str("email", email).Msg("created default admin account")
	return nil
}
