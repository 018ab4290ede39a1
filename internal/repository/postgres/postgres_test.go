package postgres_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/jnvillamor/blogsite/internal/domain"
)

func newTestUser() *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           uuid.New(),
		Email:        "new@example.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "new-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTestBlog() *domain.Blog {
	now := time.Now()
	return &domain.Blog{
		ID:        uuid.New(),
		Title:     "A Title",
		Content:   "Some content",
		AuthorID:  uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTestComment() *domain.Comment {
	now := time.Now()
	return &domain.Comment{
		ID:        uuid.New(),
		BlogID:    uuid.New(),
		AuthorID:  uuid.New(),
		Content:   "A comment",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
