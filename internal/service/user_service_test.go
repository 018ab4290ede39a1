package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnvillamor/blogsite/internal/domain"
	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
	"github.com/jnvillamor/blogsite/internal/mocks"
	"github.com/jnvillamor/blogsite/internal/service"
)

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockBlogs := mocks.NewMockBlogRepository(ctrl)
	s := service.NewUserService(mockUsers, mockBlogs)
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "a@b.com"}, nil)

		user, err := s.GetByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := s.GetByID(context.Background(), userID)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}

func TestUserService_ListBlogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockBlogs := mocks.NewMockBlogRepository(ctrl)
	s := service.NewUserService(mockUsers, mockBlogs)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		blogs := []domain.Blog{
			{ID: uuid.New(), AuthorID: userID, Title: "one"},
			{ID: uuid.New(), AuthorID: userID, Title: "two"},
		}

		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
		mockBlogs.EXPECT().ListByAuthor(gomock.Any(), userID, 10, 0).Return(blogs, 7, nil)

		items, total, err := s.ListBlogs(context.Background(), userID, 10, 0)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, 7, total)
	})

	// The author must exist before any listing is attempted.
	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, _, err := s.ListBlogs(context.Background(), userID, 10, 0)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockBlogs := mocks.NewMockBlogRepository(ctrl)
	s := service.NewUserService(mockUsers, mockBlogs)

	userID := uuid.New()
	existing := func() *domain.User {
		return &domain.User{ID: userID, FirstName: "Ada", LastName: "Lovelace"}
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(existing(), nil)
		mockUsers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		user, err := s.Update(context.Background(), userID, userID, dto.UserUpdateInput{FirstName: "Grace"})

		require.NoError(t, err)
		assert.Equal(t, "Grace", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
	})

	// The ownership check comes before any repository access.
	t.Run("updating someone else is forbidden", func(t *testing.T) {
		_, err := s.Update(context.Background(), uuid.New(), userID, dto.UserUpdateInput{FirstName: "Eve"})
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := s.Update(context.Background(), userID, userID, dto.UserUpdateInput{})
		assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	})
}
