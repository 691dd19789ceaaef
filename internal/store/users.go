package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shivamkr082003/Brainly/internal/models"
)

// UserStore handles account records in the users collection.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// CreateUser inserts a new account. Returns ErrDuplicate when the email is
// already taken (the unique index is the race backstop for concurrent
// signups with the same email).
func (s *UserStore) CreateUser(ctx context.Context, email, hashedPw, name string) (*models.User, error) {
	u := &models.User{
		Email:     email,
		Password:  hashedPw,
		Name:      name,
		CreatedAt: time.Now(),
	}
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return nil, mapErr(err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// GetUserByEmail returns the account for an email, or ErrNotFound.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// GetUserByID returns the account for a hex object id, or ErrNotFound.
func (s *UserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var u models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}
