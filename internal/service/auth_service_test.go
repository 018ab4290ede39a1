package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jnvillamor/blogsite/internal/domain"
	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
	"github.com/jnvillamor/blogsite/internal/mocks"
	"github.com/jnvillamor/blogsite/internal/service"
)

func hashPassword(t *testing.T, plaintext string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockSessions)

	input := dto.RegisterInput{
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	user, err := s.Register(context.Background(), input)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, input.FirstName, user.FirstName)
	assert.Equal(t, input.LastName, user.LastName)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.NotZero(t, user.CreatedAt)
	assert.NotZero(t, user.UpdatedAt)
}

func TestAuthService_Register_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewAuthService(mockRepo, mocks.NewMockTokenGenerator(ctrl), mocks.NewMockSessionStore(ctrl))

	input := dto.RegisterInput{
		Email:     "taken@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(&domain.User{ID: uuid.New(), Email: input.Email}, nil)

	user, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, apperror.ErrEmailAlreadyInUse)
	assert.Nil(t, user)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := service.NewAuthService(mocks.NewMockUserRepository(ctrl), mocks.NewMockTokenGenerator(ctrl), mocks.NewMockSessionStore(ctrl))

	user, err := s.Register(context.Background(), dto.RegisterInput{Email: "a@x.com"})

	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.Nil(t, user)
}

func TestAuthService_Register_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewAuthService(mockRepo, mocks.NewMockTokenGenerator(ctrl), mocks.NewMockSessionStore(ctrl))

	input := dto.RegisterInput{
		Email:     "test@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	}

	expectedErr := errors.New("database error")
	mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expectedErr)

	user, err := s.Register(context.Background(), input)

	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, user)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockSessions)

	userID := uuid.New()
	user := &domain.User{
		ID:           userID,
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "Secret123!"),
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockTokens.EXPECT().Issue(userID, service.TokenKindAccess).Return("access-token", nil)
	mockTokens.EXPECT().Issue(userID, service.TokenKindRefresh).Return("refresh-token", nil)
	mockTokens.EXPECT().RefreshTokenExpiry().Return(7 * 24 * time.Hour)
	mockSessions.EXPECT().Set(gomock.Any(), userID, "refresh-token", 7*24*time.Hour).Return(nil)

	out, err := s.Login(context.Background(), dto.LoginInput{Email: user.Email, Password: "Secret123!"})

	require.NoError(t, err)
	assert.Equal(t, userID.String(), out.UserID)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

// Unknown email and wrong password must be indistinguishable to the
// caller.
func TestAuthService_Login_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewAuthService(mockRepo, mocks.NewMockTokenGenerator(ctrl), mocks.NewMockSessionStore(ctrl))

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: hashPassword(t, "Secret123!"),
	}

	t.Run("unknown email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		out, err := s.Login(context.Background(), dto.LoginInput{Email: "nobody@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
		assert.Nil(t, out)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		out, err := s.Login(context.Background(), dto.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
		assert.Nil(t, out)
	})
}

func TestAuthService_Refresh_RotatesTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionStore(ctrl)
	tokens := service.NewTokenService("test-secret", 15, 10080)
	s := service.NewAuthService(mocks.NewMockUserRepository(ctrl), tokens, mockSessions)

	userID := uuid.New()
	oldRefresh, err := tokens.Issue(userID, service.TokenKindRefresh)
	require.NoError(t, err)

	var rotated string
	mockSessions.EXPECT().Get(gomock.Any(), userID).Return(oldRefresh, nil)
	mockSessions.EXPECT().Set(gomock.Any(), userID, gomock.Any(), tokens.RefreshTokenExpiry()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, token string, _ time.Duration) error {
			rotated = token
			return nil
		})

	pair, err := s.Refresh(context.Background(), oldRefresh)

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, rotated, pair.RefreshToken)

	// The new refresh token is valid and carries the same identity.
	gotID, kind, err := tokens.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, service.TokenKindRefresh, kind)

	// A replay of the old token now mismatches the stored value.
	mockSessions.EXPECT().Get(gomock.Any(), userID).Return(rotated, nil)

	_, err = s.Refresh(context.Background(), oldRefresh)
	assert.ErrorIs(t, err, apperror.ErrRefreshTokenMismatch)
}

func TestAuthService_Refresh_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionStore(ctrl)
	tokens := service.NewTokenService("test-secret", 15, 10080)
	s := service.NewAuthService(mocks.NewMockUserRepository(ctrl), tokens, mockSessions)

	userID := uuid.New()
	refresh, err := tokens.Issue(userID, service.TokenKindRefresh)
	require.NoError(t, err)

	mockSessions.EXPECT().Get(gomock.Any(), userID).Return("", nil)

	_, err = s.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := service.NewTokenService("test-secret", 15, 10080)
	s := service.NewAuthService(mocks.NewMockUserRepository(ctrl), tokens, mocks.NewMockSessionStore(ctrl))

	access, err := tokens.Issue(uuid.New(), service.TokenKindAccess)
	require.NoError(t, err)

	_, err = s.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiredIssuer := service.NewTokenService("test-secret", -1, -1)
	tokens := service.NewTokenService("test-secret", 15, 10080)
	s := service.NewAuthService(mocks.NewMockUserRepository(ctrl), tokens, mocks.NewMockSessionStore(ctrl))

	expired, err := expiredIssuer.Issue(uuid.New(), service.TokenKindRefresh)
	require.NoError(t, err)

	_, err = s.Refresh(context.Background(), expired)
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := mocks.NewMockSessionStore(ctrl)
	s := service.NewAuthService(mocks.NewMockUserRepository(ctrl), mocks.NewMockTokenGenerator(ctrl), mockSessions)

	userID := uuid.New()
	mockSessions.EXPECT().Delete(gomock.Any(), userID).Return(nil).Times(2)

	assert.NoError(t, s.Logout(context.Background(), userID))
	assert.NoError(t, s.Logout(context.Background(), userID))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	s := service.NewAuthService(mockRepo, mocks.NewMockTokenGenerator(ctrl), mocks.NewMockSessionStore(ctrl))

	userID := uuid.New()
	makeUser := func() *domain.User {
		return &domain.User{
			ID:           userID,
			Email:        "test@example.com",
			PasswordHash: hashPassword(t, "OldSecret1!"),
		}
	}

	t.Run("success rehashes and persists", func(t *testing.T) {
		user := makeUser()
		oldHash := user.PasswordHash

		mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := s.ChangePassword(context.Background(), userID, dto.ChangePasswordInput{
			CurrentPassword: "OldSecret1!",
			NewPassword:     "NewSecret1!",
		})

		require.NoError(t, err)
		assert.NotEqual(t, oldHash, updated.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("NewSecret1!")))
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(makeUser(), nil)

		_, err := s.ChangePassword(context.Background(), userID, dto.ChangePasswordInput{
			CurrentPassword: "wrong",
			NewPassword:     "NewSecret1!",
		})

		assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err := s.ChangePassword(context.Background(), userID, dto.ChangePasswordInput{
			CurrentPassword: "OldSecret1!",
			NewPassword:     "NewSecret1!",
		})

		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}
