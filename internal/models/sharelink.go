package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ShareLink grants read-only access to one user's full content list via an
// opaque hash. The user_id field carries a unique index, so a user holds at
// most one active link at any time.
type ShareLink struct {
	ID     primitive.ObjectID `json:"-"    bson:"_id,omitempty"`
	Hash   string             `json:"hash" bson:"hash"`
	UserID primitive.ObjectID `json:"-"    bson:"user_id"`
}

// ShareRequest is the JSON body for POST /api/v1/brain/share.
type ShareRequest struct {
	Share bool `json:"share"`
}
