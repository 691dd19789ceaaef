// Package content implements the saved-item CRUD endpoints. Every route here
// sits behind the auth middleware; the owner identity always comes from the
// request context, never from the body.
package content

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/shivamkr082003/Brainly/internal/api"
	"github.com/shivamkr082003/Brainly/internal/middleware"
	"github.com/shivamkr082003/Brainly/internal/models"
)

// Store defines the interface for content persistence.
type Store interface {
	Insert(ctx context.Context, ownerID, link, contentType, title string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Content, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}

// UserStore resolves owner records for the read-side join in List.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Handler holds the content HTTP handlers.
type Handler struct {
	contents Store
	users    UserStore
	log      *logrus.Logger
}

func NewHandler(contents Store, users UserStore, log *logrus.Logger) *Handler {
	return &Handler{contents: contents, users: users, log: log}
}

// Create saves a new item for the caller. Link and type are opaque strings;
// the service does not validate them.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserID(r.Context())

	var req models.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.contents.Insert(r.Context(), owner, req.Link, req.Type, req.Title); err != nil {
		h.log.WithError(err).Error("content: insert failed")
		api.Message(w, http.StatusInternalServerError, "Error adding content")
		return
	}

	api.Message(w, http.StatusOK, "Content added")
}

// List returns all of the caller's items with the owner reference expanded
// to name and email.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.UserID(r.Context())

	owner, err := h.users.GetUserByID(r.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("content: owner lookup failed")
		api.Message(w, http.StatusInternalServerError, "Error fetching content")
		return
	}

	items, err := h.contents.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("content: list failed")
		api.Message(w, http.StatusInternalServerError, "Error fetching content")
		return
	}

	expanded := models.Owner{ID: owner.ID.Hex(), Name: owner.Name, Email: owner.Email}
	views := make([]models.ContentView, 0, len(items))
	for i := range items {
		views = append(views, items[i].Expanded(expanded))
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{"content": views})
}

// Delete removes the item matching both the given id and the caller. A miss
// (unknown id, or an id owned by someone else) still reports success; the
// response does not distinguish the two.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserID(r.Context())

	var req models.DeleteContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.contents.DeleteByIDAndOwner(r.Context(), req.ContentID, owner); err != nil {
		h.log.WithError(err).Error("content: delete failed")
		api.Message(w, http.StatusInternalServerError, "Error deleting content")
		return
	}

	api.Message(w, http.StatusOK, "Content deleted")
}
