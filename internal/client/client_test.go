package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivamkr082003/Brainly/internal/auth"
	"github.com/shivamkr082003/Brainly/internal/content"
	"github.com/shivamkr082003/Brainly/internal/middleware"
	"github.com/shivamkr082003/Brainly/internal/models"
	"github.com/shivamkr082003/Brainly/internal/share"
	"github.com/shivamkr082003/Brainly/internal/store"
)

// In-memory stores implementing every persistence interface the handlers
// consume, so the full route table can be exercised without MongoDB.

type memUserStore struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: map[string]*models.User{}, byID: map[string]*models.User{}}
}

func (m *memUserStore) CreateUser(ctx context.Context, email, hashedPw, name string) (*models.User, error) {
	if _, ok := m.byEmail[email]; ok {
		return nil, store.ErrDuplicate
	}
	u := &models.User{ID: primitive.NewObjectID(), Email: email, Password: hashedPw, Name: name, CreatedAt: time.Now()}
	m.byEmail[email] = u
	m.byID[u.ID.Hex()] = u
	return u, nil
}

func (m *memUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (m *memUserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

type memContentStore struct {
	items []models.Content
}

func (m *memContentStore) Insert(ctx context.Context, ownerID, link, contentType, title string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return store.ErrNotFound
	}
	m.items = append(m.items, models.Content{
		ID: primitive.NewObjectID(), Title: title, Link: link, Type: contentType,
		Tags: []string{}, UserID: oid,
	})
	return nil
}

func (m *memContentStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Content, error) {
	var out []models.Content
	for _, c := range m.items {
		if c.UserID.Hex() == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContentStore) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	kept := m.items[:0]
	for _, c := range m.items {
		if c.ID.Hex() == id && c.UserID.Hex() == ownerID {
			continue
		}
		kept = append(kept, c)
	}
	m.items = kept
	return nil
}

type memLinkStore struct {
	byOwner map[string]*models.ShareLink
}

func newMemLinkStore() *memLinkStore {
	return &memLinkStore{byOwner: map[string]*models.ShareLink{}}
}

func (m *memLinkStore) Create(ctx context.Context, ownerID, hash string) error {
	if _, ok := m.byOwner[ownerID]; ok {
		return store.ErrDuplicate
	}
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return store.ErrNotFound
	}
	m.byOwner[ownerID] = &models.ShareLink{ID: primitive.NewObjectID(), Hash: hash, UserID: oid}
	return nil
}

func (m *memLinkStore) GetByOwner(ctx context.Context, ownerID string) (*models.ShareLink, error) {
	l, ok := m.byOwner[ownerID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return l, nil
}

func (m *memLinkStore) GetByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	for _, l := range m.byOwner {
		if l.Hash == hash {
			return l, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memLinkStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	delete(m.byOwner, ownerID)
	return nil
}

// newTestServer wires the production route table onto the in-memory stores.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(bytes.NewBuffer(nil))
	secret := []byte("test-secret")

	users := newMemUserStore()
	contents := &memContentStore{}
	links := newMemLinkStore()

	authHandler := auth.NewHandler(users, secret, log)
	contentHandler := content.NewHandler(contents, users, log)
	shareHandler := share.NewHandler(links, contents, users, log)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(secret))
			r.Post("/content", contentHandler.Create)
			r.Get("/content", contentHandler.List)
			r.Delete("/content", contentHandler.Delete)
			r.Post("/brain/share", shareHandler.Share)
		})

		r.Get("/brain/{shareLink}", shareHandler.Resolve)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestEndToEnd(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := New(srv.URL)

	// Register → Authenticate.
	user, err := c.Signup(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)

	token, signed, err := c.Signin(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, signed.ID)
	c.SetToken(token)

	// Save a link, see it in the list with the owner expanded.
	require.NoError(t, c.AddContent(ctx, "https://youtube.com/watch?v=abc", "youtube", "demo"))

	items, err := c.ListContent(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "demo", items[0].Title)
	assert.Equal(t, "Ann", items[0].Owner.Name)
	assert.Equal(t, "a@x.com", items[0].Owner.Email)

	// Enable sharing; the public view needs no token.
	hash, err := c.EnableShare(ctx)
	require.NoError(t, err)
	require.Len(t, hash, 20)

	anon := New(srv.URL)
	brain, err := anon.ViewBrain(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, "Ann", brain.Name)
	require.Len(t, brain.Content, 1)
	assert.Equal(t, "demo", brain.Content[0].Title)

	// Disable sharing; the hash stops resolving.
	require.NoError(t, c.DisableShare(ctx))
	_, err = anon.ViewBrain(ctx, hash)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestSignup_DuplicateSurfacesServerMessage(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := New(srv.URL)

	_, err := c.Signup(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)

	_, err = c.Signup(ctx, "a@x.com", "secret1", "Ann")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := New(srv.URL)
	_, err := c.ListContent(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestEnableShare_IdempotentAcrossRequests(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := New(srv.URL)

	_, err := c.Signup(ctx, "a@x.com", "secret1", "Ann")
	require.NoError(t, err)
	token, _, err := c.Signin(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	c.SetToken(token)

	first, err := c.EnableShare(ctx)
	require.NoError(t, err)
	second, err := c.EnableShare(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestViewBrain_UnknownHash(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	_, err := c.ViewBrain(context.Background(), "00000000000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
