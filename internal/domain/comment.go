package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID
	BlogID    uuid.UUID
	AuthorID  uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithReplies pairs a comment with its direct-child count.
// The count is computed per read; it is never stored on the entity.
type CommentWithReplies struct {
	Comment
	ReplyCount int
}
