package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shivamkr082003/Brainly/internal/models"
)

// LinkStore handles share links in the links collection.
type LinkStore struct {
	col *mongo.Collection
}

func NewLinkStore(db *mongo.Database) *LinkStore {
	return &LinkStore{col: db.Collection("links")}
}

// Create persists a new share link binding hash to ownerID. Returns
// ErrDuplicate when the owner already holds a link; the unique index on
// user_id is what keeps concurrent enables down to a single record.
func (s *LinkStore) Create(ctx context.Context, ownerID, hash string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return ErrNotFound
	}
	l := &models.ShareLink{Hash: hash, UserID: oid}
	if _, err := s.col.InsertOne(ctx, l); err != nil {
		return mapErr(err)
	}
	return nil
}

// GetByOwner returns the owner's share link, or ErrNotFound.
func (s *LinkStore) GetByOwner(ctx context.Context, ownerID string) (*models.ShareLink, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	var l models.ShareLink
	if err := s.col.FindOne(ctx, bson.M{"user_id": oid}).Decode(&l); err != nil {
		return nil, mapErr(err)
	}
	return &l, nil
}

// GetByHash resolves a public hash to its share link, or ErrNotFound.
func (s *LinkStore) GetByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	var l models.ShareLink
	if err := s.col.FindOne(ctx, bson.M{"hash": hash}).Decode(&l); err != nil {
		return nil, mapErr(err)
	}
	return &l, nil
}

// DeleteByOwner removes the owner's share link. Deleting when no link exists
// matches zero documents and is not an error.
func (s *LinkStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil
	}
	if _, err := s.col.DeleteOne(ctx, bson.M{"user_id": oid}); err != nil {
		return mapErr(err)
	}
	return nil
}
