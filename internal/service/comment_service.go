package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jnvillamor/blogsite/internal/domain"
	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
)

// CommentService owns the threaded-comment model: one level of lazy
// expansion per call, reply counts computed on read, and referential
// checks against blogs, authors and parent comments.
type CommentService struct {
	comments domain.CommentRepository
	blogs    domain.BlogRepository
	users    domain.UserRepository
}

func NewCommentService(comments domain.CommentRepository, blogs domain.BlogRepository, users domain.UserRepository) *CommentService {
	return &CommentService{
		comments: comments,
		blogs:    blogs,
		users:    users,
	}
}

type commentRefs struct {
	blogID   uuid.UUID
	authorID uuid.UUID
	parentID *uuid.UUID
}

// validateRefs coerces the string-encoded identifiers once and checks
// every reference before any write: the blog and author must exist, and
// a parent comment must belong to the same blog as the new comment.
func (s *CommentService) validateRefs(ctx context.Context, blogIDStr, authorIDStr string, parentIDStr *string) (*commentRefs, error) {
	blogID, err := uuid.Parse(blogIDStr)
	if err != nil {
		return nil, apperror.BadRequest("invalid blog_id")
	}

	authorID, err := uuid.Parse(authorIDStr)
	if err != nil {
		return nil, apperror.BadRequest("invalid author_id")
	}

	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NotFound("blog not found")
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperror.NotFound("author not found")
	}

	refs := &commentRefs{blogID: blogID, authorID: authorID}

	if parentIDStr != nil && *parentIDStr != "" {
		parentID, err := uuid.Parse(*parentIDStr)
		if err != nil {
			return nil, apperror.BadRequest("invalid parent_id")
		}

		parent, err := s.comments.GetByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NotFound("parent comment not found")
		}

		// Replies cannot cross blog boundaries.
		if parent.BlogID != blogID {
			return nil, apperror.BadRequest("parent comment does not belong to the specified blog")
		}

		refs.parentID = &parentID
	}

	return refs, nil
}

// ensureNoCycle rejects re-parenting a comment onto itself or onto any
// of its own descendants; either would detach a cycle from the tree and
// the comment would stop appearing in top-level listings.
func (s *CommentService) ensureNoCycle(ctx context.Context, id, parentID uuid.UUID) error {
	cursor := &parentID
	for cursor != nil {
		if *cursor == id {
			return apperror.BadRequest("a comment cannot be its own ancestor")
		}

		ancestor, err := s.comments.GetByID(ctx, *cursor)
		if err != nil {
			return err
		}
		if ancestor == nil {
			return nil
		}
		cursor = ancestor.ParentID
	}
	return nil
}

func (s *CommentService) Create(ctx context.Context, input dto.CommentCreateInput) (*domain.CommentWithReplies, error) {
	if input.Content == "" {
		return nil, apperror.BadRequest("content is required")
	}

	refs, err := s.validateRefs(ctx, input.BlogID, input.AuthorID, input.ParentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	comment := domain.Comment{
		ID:        uuid.New(),
		BlogID:    refs.blogID,
		AuthorID:  refs.authorID,
		ParentID:  refs.parentID,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}

	return &domain.CommentWithReplies{Comment: comment}, nil
}

func (s *CommentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommentWithReplies, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperror.NotFound("comment not found")
	}
	return comment, nil
}

// ListTopLevel pages through parentless comments, newest first. A nil
// blogID means the global feed across all blogs.
func (s *CommentService) ListTopLevel(ctx context.Context, blogID *uuid.UUID, limit, offset int) ([]domain.CommentWithReplies, int, error) {
	limit, offset = clampPage(limit, offset)

	if blogID != nil {
		blog, err := s.blogs.GetByID(ctx, *blogID)
		if err != nil {
			return nil, 0, err
		}
		if blog == nil {
			return nil, 0, apperror.NotFound("blog not found")
		}
	}

	return s.comments.ListTopLevel(ctx, blogID, limit, offset)
}

// ListReplies returns direct children only; a client pages into each
// reply's own replies separately.
func (s *CommentService) ListReplies(ctx context.Context, commentID uuid.UUID, limit, offset int) ([]domain.CommentWithReplies, int, error) {
	limit, offset = clampPage(limit, offset)

	if _, err := s.GetByID(ctx, commentID); err != nil {
		return nil, 0, err
	}

	return s.comments.ListReplies(ctx, commentID, limit, offset)
}

// Update re-validates every reference exactly as creation does before
// the ownership check.
func (s *CommentService) Update(ctx context.Context, id uuid.UUID, input dto.CommentUpdateInput, actingUserID uuid.UUID) (*domain.CommentWithReplies, error) {
	if input.Content == "" {
		return nil, apperror.BadRequest("content is required")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := s.validateRefs(ctx, input.BlogID, input.AuthorID, input.ParentID)
	if err != nil {
		return nil, err
	}

	if refs.parentID != nil {
		if err := s.ensureNoCycle(ctx, id, *refs.parentID); err != nil {
			return nil, err
		}
	}

	if !CanMutate(actingUserID, existing.AuthorID) {
		return nil, apperror.Forbidden("you do not own this comment")
	}

	comment := existing.Comment
	comment.BlogID = refs.blogID
	comment.AuthorID = refs.authorID
	comment.ParentID = refs.parentID
	comment.Content = input.Content
	comment.UpdatedAt = time.Now()

	if err := s.comments.Update(ctx, &comment); err != nil {
		return nil, err
	}

	return &domain.CommentWithReplies{Comment: comment, ReplyCount: existing.ReplyCount}, nil
}

// Delete removes the comment and, through the schema cascade, every
// descendant reply.
func (s *CommentService) Delete(ctx context.Context, id, actingUserID uuid.UUID) error {
	comment, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanMutate(actingUserID, comment.AuthorID) {
		return apperror.Forbidden("you do not own this comment")
	}

	return s.comments.Delete(ctx, id)
}

func (s *CommentService) Like(ctx context.Context, commentID, userID uuid.UUID) error {
	if _, err := s.GetByID(ctx, commentID); err != nil {
		return err
	}
	return s.comments.AddLike(ctx, commentID, userID)
}

func (s *CommentService) Unlike(ctx context.Context, commentID, userID uuid.UUID) error {
	if _, err := s.GetByID(ctx, commentID); err != nil {
		return err
	}
	return s.comments.RemoveLike(ctx, commentID, userID)
}
