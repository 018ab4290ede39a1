package dto

import (
	"time"

	"github.com/jnvillamor/blogsite/internal/domain"
)

// AuthorID arrives as the uuid string form; the service validates and
// coerces it once before persistence.
type BlogCreateInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}

type BlogUpdateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type BlogResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBlogResponse(b *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		Content:   b.Content,
		AuthorID:  b.AuthorID.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
