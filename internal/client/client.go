// Package client is a Go consumer of the Brainly API, used by the brainctl
// command. A Client is constructed once and injected wherever it is needed;
// it holds no global state.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/shivamkr082003/Brainly/internal/models"
)

// Client talks to a running Brainly API server.
type Client struct {
	http *resty.Client
}

// New builds a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.http.SetHeader("Authorization", "Bearer "+token)
}

type messageBody struct {
	Message string `json:"message"`
}

// apiErr turns a non-2xx response into an error carrying the server's
// message field.
func apiErr(resp *resty.Response, errBody *messageBody) error {
	if errBody.Message != "" {
		return fmt.Errorf("%s (%s)", errBody.Message, resp.Status())
	}
	return fmt.Errorf("unexpected response %s", resp.Status())
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*models.UserView, error) {
	var out struct {
		Message string          `json:"message"`
		User    models.UserView `json:"user"`
	}
	var errBody messageBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.SignupRequest{Email: email, Password: password, Name: name}).
		SetResult(&out).
		SetError(&errBody).
		Post("/api/v1/signup")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp, &errBody)
	}
	return &out.User, nil
}

// Signin authenticates and returns the bearer token with the user projection.
func (c *Client) Signin(ctx context.Context, email, password string) (string, *models.UserView, error) {
	var out struct {
		Token   string          `json:"token"`
		User    models.UserView `json:"user"`
		Message string          `json:"message"`
	}
	var errBody messageBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.SigninRequest{Email: email, Password: password}).
		SetResult(&out).
		SetError(&errBody).
		Post("/api/v1/signin")
	if err != nil {
		return "", nil, err
	}
	if resp.IsError() {
		return "", nil, apiErr(resp, &errBody)
	}
	return out.Token, &out.User, nil
}

// AddContent saves a new item.
func (c *Client) AddContent(ctx context.Context, link, contentType, title string) error {
	var errBody messageBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.CreateContentRequest{Link: link, Type: contentType, Title: title}).
		SetError(&errBody).
		Post("/api/v1/content")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp, &errBody)
	}
	return nil
}

// ListContent returns the caller's saved items.
func (c *Client) ListContent(ctx context.Context) ([]models.ContentView, error) {
	var out struct {
		Content []models.ContentView `json:"content"`
	}
	var errBody messageBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get("/api/v1/content")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp, &errBody)
	}
	return out.Content, nil
}

// DeleteContent removes one of the caller's items by id.
func (c *Client) DeleteContent(ctx context.Context, contentID string) error {
	var errBody messageBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.DeleteContentRequest{ContentID: contentID}).
		SetError(&errBody).
		Delete("/api/v1/content")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp, &errBody)
	}
	return nil
}

// EnableShare turns sharing on and returns the public hash.
func (c *Client) EnableShare(ctx context.Context) (string, error) {
	var out struct {
		Hash string `json:"hash"`
	}
	var errBody messageBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.ShareRequest{Share: true}).
		SetResult(&out).
		SetError(&errBody).
		Post("/api/v1/brain/share")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiErr(resp, &errBody)
	}
	return out.Hash, nil
}

// DisableShare turns sharing off.
func (c *Client) DisableShare(ctx context.Context) error {
	var errBody messageBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(models.ShareRequest{Share: false}).
		SetError(&errBody).
		Post("/api/v1/brain/share")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp, &errBody)
	}
	return nil
}

// SharedBrain is the public view behind a share hash.
type SharedBrain struct {
	Name    string               `json:"name"`
	Email   string               `json:"email"`
	Content []models.ContentView `json:"content"`
}

// ViewBrain resolves a public share hash. No token is required.
func (c *Client) ViewBrain(ctx context.Context, hash string) (*SharedBrain, error) {
	var out SharedBrain
	var errBody messageBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errBody).
		Get("/api/v1/brain/" + hash)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp, &errBody)
	}
	return &out, nil
}
