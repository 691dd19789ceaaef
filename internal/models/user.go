package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account stored in the users collection. The email
// carries a unique index; the password field holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Email     string             `json:"email"      bson:"email"`
	Password  string             `json:"-"          bson:"password"`
	Name      string             `json:"name"       bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// UserView is the safe projection of a User returned by the API.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// View strips the credential from a User.
func (u *User) View() UserView {
	return UserView{ID: u.ID.Hex(), Email: u.Email, Name: u.Name}
}

// SignupRequest is the JSON body for POST /api/v1/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SigninRequest is the JSON body for POST /api/v1/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
