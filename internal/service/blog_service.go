package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jnvillamor/blogsite/internal/domain"
	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
)

type BlogService struct {
	blogs domain.BlogRepository
}

func NewBlogService(blogs domain.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

func (s *BlogService) Create(ctx context.Context, input dto.BlogCreateInput, actingUserID uuid.UUID) (*domain.Blog, error) {
	if input.Title == "" || input.Content == "" {
		return nil, apperror.BadRequest("title and content are required")
	}

	authorID, err := uuid.Parse(input.AuthorID)
	if err != nil {
		return nil, apperror.BadRequest("invalid author_id")
	}

	// The declared author must be the acting user.
	if !CanMutate(actingUserID, authorID) {
		return nil, apperror.Forbidden("you can only create blogs for your own account")
	}

	now := time.Now()
	blog := &domain.Blog{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *BlogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperror.NotFound("blog not found")
	}
	return blog, nil
}

func (s *BlogService) List(ctx context.Context, limit, offset int) ([]domain.Blog, int, error) {
	limit, offset = clampPage(limit, offset)
	return s.blogs.List(ctx, limit, offset)
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, input dto.BlogUpdateInput, actingUserID uuid.UUID) (*domain.Blog, error) {
	if input.Title == "" || input.Content == "" {
		return nil, apperror.BadRequest("title and content are required")
	}

	blog, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanMutate(actingUserID, blog.AuthorID) {
		return nil, apperror.Forbidden("you do not own this blog")
	}

	blog.Title = input.Title
	blog.Content = input.Content
	blog.UpdatedAt = time.Now()

	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Delete removes the blog; its comments go with it via the cascade rule.
func (s *BlogService) Delete(ctx context.Context, id, actingUserID uuid.UUID) error {
	blog, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanMutate(actingUserID, blog.AuthorID) {
		return apperror.Forbidden("you do not own this blog")
	}

	return s.blogs.Delete(ctx, id)
}

// Like is idempotent: liking an already liked blog is a no-op.
func (s *BlogService) Like(ctx context.Context, blogID, userID uuid.UUID) error {
	if _, err := s.GetByID(ctx, blogID); err != nil {
		return err
	}
	return s.blogs.AddLike(ctx, blogID, userID)
}

func (s *BlogService) Unlike(ctx context.Context, blogID, userID uuid.UUID) error {
	if _, err := s.GetByID(ctx, blogID); err != nil {
		return err
	}
	return s.blogs.RemoveLike(ctx, blogID, userID)
}
