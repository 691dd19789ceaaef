package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shivamkr082003/Brainly/internal/models"
)

// ContentStore handles saved items in the contents collection.
type ContentStore struct {
	col *mongo.Collection
}

func NewContentStore(db *mongo.Database) *ContentStore {
	return &ContentStore{col: db.Collection("contents")}
}

// Insert stores a new content item owned by ownerID. Tags is always written
// as an empty list; no endpoint populates it.
func (s *ContentStore) Insert(ctx context.Context, ownerID, link, contentType, title string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return ErrNotFound
	}
	c := &models.Content{
		Title:  title,
		Link:   link,
		Type:   contentType,
		Tags:   []string{},
		UserID: oid,
	}
	if _, err := s.col.InsertOne(ctx, c); err != nil {
		return mapErr(err)
	}
	return nil
}

// ListByOwner returns all content items owned by ownerID.
func (s *ContentStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Content, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}
	cur, err := s.col.Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, mapErr(err)
	}
	defer cur.Close(ctx)

	var items []models.Content
	if err := cur.All(ctx, &items); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

// DeleteByIDAndOwner removes the item matching both id and owner. Deleting an
// id that does not exist, or that belongs to another owner, matches zero
// documents and is not an error.
func (s *ContentStore) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	cid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil
	}
	if _, err := s.col.DeleteMany(ctx, bson.M{"_id": cid, "user_id": oid}); err != nil {
		return mapErr(err)
	}
	return nil
}
