package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Content is a saved item in the contents collection. Type is an opaque
// platform label supplied by the client; the service does not enumerate or
// validate it. Tags exists in the schema but no endpoint populates it.
type Content struct {
	ID     primitive.ObjectID `json:"id"     bson:"_id,omitempty"`
	Title  string             `json:"title"  bson:"title"`
	Link   string             `json:"link"   bson:"link"`
	Type   string             `json:"type"   bson:"type"`
	Tags   []string           `json:"tags"   bson:"tags"`
	UserID primitive.ObjectID `json:"userId" bson:"user_id"`
}

// Owner is the expanded owner reference embedded in content responses.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContentView is a Content item with its owner reference expanded for display.
type ContentView struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Type  string   `json:"type"`
	Tags  []string `json:"tags"`
	Owner Owner    `json:"userId"`
}

// Expanded builds the display view of c with the given owner embedded.
func (c *Content) Expanded(owner Owner) ContentView {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return ContentView{
		ID:    c.ID.Hex(),
		Title: c.Title,
		Link:  c.Link,
		Type:  c.Type,
		Tags:  tags,
		Owner: owner,
	}
}

// CreateContentRequest is the JSON body for POST /api/v1/content.
type CreateContentRequest struct {
	Link  string `json:"link"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// DeleteContentRequest is the JSON body for DELETE /api/v1/content.
type DeleteContentRequest struct {
	ContentID string `json:"contentId"`
}
