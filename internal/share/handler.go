// Package share implements the brain-sharing endpoints: issuing and revoking
// a user's public share hash, and the unauthenticated resolution of that hash
// back to the owner's content list.
package share

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/shivamkr082003/Brainly/internal/api"
	"github.com/shivamkr082003/Brainly/internal/middleware"
	"github.com/shivamkr082003/Brainly/internal/models"
	"github.com/shivamkr082003/Brainly/internal/store"
)

// hashBytes of randomness per share hash; hex-encoded this yields 20
// characters, enough to make guessing infeasible.
const hashBytes = 10

// LinkStore defines the interface for share link persistence.
type LinkStore interface {
	Create(ctx context.Context, ownerID, hash string) error
	GetByOwner(ctx context.Context, ownerID string) (*models.ShareLink, error)
	GetByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// ContentStore lists a user's items for the public view.
type ContentStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Content, error)
}

// UserStore resolves the owning account of a share link.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Handler holds the sharing HTTP handlers.
type Handler struct {
	links    LinkStore
	contents ContentStore
	users    UserStore
	log      *logrus.Logger
}

func NewHandler(links LinkStore, contents ContentStore, users UserStore, log *logrus.Logger) *Handler {
	return &Handler{links: links, contents: contents, users: users, log: log}
}

// Share enables or disables the caller's share link. Enabling is idempotent:
// an existing hash is returned as-is. Disabling succeeds whether or not a
// link existed.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	owner := middleware.UserID(r.Context())

	var req models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Share {
		if err := h.links.DeleteByOwner(r.Context(), owner); err != nil {
			h.log.WithError(err).Error("share: disable failed")
			api.Message(w, http.StatusInternalServerError, "Error removing share link")
			return
		}
		api.Message(w, http.StatusOK, "Share link removed")
		return
	}

	hash, err := h.enable(r.Context(), owner)
	if err != nil {
		h.log.WithError(err).Error("share: enable failed")
		api.Message(w, http.StatusInternalServerError, "Error creating share link")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"hash": hash})
}

func (h *Handler) enable(ctx context.Context, owner string) (string, error) {
	existing, err := h.links.GetByOwner(ctx, owner)
	if err == nil {
		return existing.Hash, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	hash, err := newHash()
	if err != nil {
		return "", err
	}
	if err := h.links.Create(ctx, owner, hash); err != nil {
		// A concurrent enable won the unique index race; return its hash.
		if errors.Is(err, store.ErrDuplicate) {
			if existing, err := h.links.GetByOwner(ctx, owner); err == nil {
				return existing.Hash, nil
			}
		}
		return "", err
	}
	return hash, nil
}

// Resolve is the public, unauthenticated view of a shared brain.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareLink")

	link, err := h.links.GetByHash(r.Context(), hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Message(w, http.StatusNotFound, "Sorry, incorrect input")
			return
		}
		h.log.WithError(err).Error("share: hash lookup failed")
		api.Message(w, http.StatusInternalServerError, "Error resolving share link")
		return
	}

	ownerID := link.UserID.Hex()

	owner, err := h.users.GetUserByID(r.Context(), ownerID)
	if err != nil {
		// Should not happen while the ownership invariant holds, but a link
		// whose owner is gone must not 500.
		if errors.Is(err, store.ErrNotFound) {
			api.Message(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.WithError(err).Error("share: owner lookup failed")
		api.Message(w, http.StatusInternalServerError, "Error resolving share link")
		return
	}

	items, err := h.contents.ListByOwner(r.Context(), ownerID)
	if err != nil {
		h.log.WithError(err).Error("share: content list failed")
		api.Message(w, http.StatusInternalServerError, "Error resolving share link")
		return
	}

	expanded := models.Owner{ID: owner.ID.Hex(), Name: owner.Name, Email: owner.Email}
	views := make([]models.ContentView, 0, len(items))
	for i := range items {
		views = append(views, items[i].Expanded(expanded))
	}

	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":    owner.Name,
		"email":   owner.Email,
		"content": views,
	})
}

func newHash() (string, error) {
	b := make([]byte, hashBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
