package dto

import (
	"time"

	"github.com/jnvillamor/blogsite/internal/domain"
)

type CommentCreateInput struct {
	Content  string  `json:"content"`
	AuthorID string  `json:"author_id"`
	BlogID   string  `json:"blog_id"`
	ParentID *string `json:"parent_id,omitempty"`
}

type CommentUpdateInput struct {
	Content  string  `json:"content"`
	AuthorID string  `json:"author_id"`
	BlogID   string  `json:"blog_id"`
	ParentID *string `json:"parent_id,omitempty"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	BlogID     string    `json:"blog_id"`
	AuthorID   string    `json:"author_id"`
	ParentID   *string   `json:"parent_id,omitempty"`
	Content    string    `json:"content"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewCommentResponse(c *domain.CommentWithReplies) CommentResponse {
	resp := CommentResponse{
		ID:         c.ID.String(),
		BlogID:     c.BlogID.String(),
		AuthorID:   c.AuthorID.String(),
		Content:    c.Content,
		ReplyCount: c.ReplyCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.ParentID != nil {
		parent := c.ParentID.String()
		resp.ParentID = &parent
	}
	return resp
}

func NewCommentResponses(comments []domain.CommentWithReplies) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
