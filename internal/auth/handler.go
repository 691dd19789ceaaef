package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/shivamkr082003/Brainly/internal/api"
	"github.com/shivamkr082003/Brainly/internal/models"
	"github.com/shivamkr082003/Brainly/internal/store"
)

const (
	minPasswordLen = 6
	minNameLen     = 2
)

// UserStore defines the interface for account persistence.
type UserStore interface {
	CreateUser(ctx context.Context, email, hashedPw, name string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Handler holds the signup and signin HTTP handlers.
type Handler struct {
	users  UserStore
	secret []byte
	log    *logrus.Logger
}

func NewHandler(users UserStore, secret []byte, log *logrus.Logger) *Handler {
	return &Handler{users: users, secret: secret, log: log}
}

// Signup registers a new account.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validateSignup(&req); len(fields) > 0 {
		api.InvalidInput(w, fields)
		return
	}

	// Read-then-write check; the unique email index is the backstop for two
	// identical signups racing past it.
	if _, err := h.users.GetUserByEmail(r.Context(), req.Email); err == nil {
		api.Message(w, http.StatusBadRequest, "User already exists. Please sign in.")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.log.WithError(err).Error("signup: email lookup failed")
		api.Message(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.WithError(err).Error("signup: hashing failed")
		api.Message(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Email, string(hashed), req.Name)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			api.Message(w, http.StatusBadRequest, "User already exists. Please sign in.")
			return
		}
		h.log.WithError(err).Error("signup: insert failed")
		api.Message(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    user.View(),
	})
}

// Signin authenticates an account and issues a bearer token.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fields := validateSignin(&req); len(fields) > 0 {
		api.InvalidInput(w, fields)
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Message(w, http.StatusBadRequest, "User not found. Please sign up.")
			return
		}
		h.log.WithError(err).Error("signin: email lookup failed")
		api.Message(w, http.StatusInternalServerError, "Error signing in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		api.Message(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := GenerateToken(user.ID.Hex(), h.secret)
	if err != nil {
		h.log.WithError(err).Error("signin: token signing failed")
		api.Message(w, http.StatusInternalServerError, "Error signing in")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"user":    user.View(),
		"message": "Signed in successfully",
	})
}

func validateSignup(req *models.SignupRequest) map[string]string {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(req.Password) < minPasswordLen {
		fields["password"] = "must be at least 6 characters"
	}
	if len(req.Name) < minNameLen {
		fields["name"] = "must be at least 2 characters"
	}
	return fields
}

func validateSignin(req *models.SigninRequest) map[string]string {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if req.Password == "" {
		fields["password"] = "is required"
	}
	return fields
}
