package types

import "time"

// CommentAuthor is the populated author reference on a comment
type CommentAuthor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Comment is a comment on a recipe. Comments are not part of the
// reducer-managed store; each details view fetches and holds its own.
type Comment struct {
	ID        string        `json:"_id"`
	Text      string        `json:"text"`
	Author    CommentAuthor `json:"userId"`
	RecipeID  string        `json:"recipeId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CommentInput is the payload for creating a comment
type CommentInput struct {
	Text     string `json:"text"`
	UserID   string `json:"userId"`
	RecipeID string `json:"recipeId"`
}
