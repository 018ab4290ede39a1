package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jnvillamor/blogsite/internal/domain"
	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
)

type UserService struct {
	users domain.UserRepository
	blogs domain.BlogRepository
}

func NewUserService(users domain.UserRepository, blogs domain.BlogRepository) *UserService {
	return &UserService{
		users: users,
		blogs: blogs,
	}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (s *UserService) ListBlogs(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Blog, int, error) {
	limit, offset = clampPage(limit, offset)

	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}

	return s.blogs.ListByAuthor(ctx, userID, limit, offset)
}

func (s *UserService) Update(ctx context.Context, actingUserID, targetID uuid.UUID, input dto.UserUpdateInput) (*domain.User, error) {
	if !CanMutate(actingUserID, targetID) {
		return nil, apperror.Forbidden("you can only update your own profile")
	}

	if input.FirstName == "" && input.LastName == "" {
		return nil, apperror.BadRequest("nothing to update")
	}

	user, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
