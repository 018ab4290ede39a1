package domain

//go:generate mockgen -destination=../mocks/mock_repositories.go -package=mocks github.com/jnvillamor/blogsite/internal/domain UserRepository,BlogRepository,CommentRepository,SessionStore

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repositories return (nil, nil) when the requested row does not exist;
// services decide which error kind an absent row maps to.

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

type BlogRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	Create(ctx context.Context, blog *Blog) error
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]Blog, int, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]Blog, int, error)
	AddLike(ctx context.Context, blogID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, blogID, userID uuid.UUID) error
}

type CommentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CommentWithReplies, error)
	Create(ctx context.Context, comment *Comment) error
	Update(ctx context.Context, comment *Comment) error
	// Delete removes the comment; descendant replies go with it via the
	// schema's cascade rule, not an explicit tree walk.
	Delete(ctx context.Context, id uuid.UUID) error
	// ListTopLevel returns parentless comments newest first. A nil blogID
	// means the global feed across all blogs.
	ListTopLevel(ctx context.Context, blogID *uuid.UUID, limit, offset int) ([]CommentWithReplies, int, error)
	ListReplies(ctx context.Context, parentID uuid.UUID, limit, offset int) ([]CommentWithReplies, int, error)
	AddLike(ctx context.Context, commentID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, commentID, userID uuid.UUID) error
}

// SessionStore holds the single live refresh token per user. Set
// unconditionally overwrites (rotation); Get returns "" when no session
// exists; Delete is idempotent.
type SessionStore interface {
	Set(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
