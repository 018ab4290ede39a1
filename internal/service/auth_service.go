package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jnvillamor/blogsite/internal/domain"
	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
)

// AuthService orchestrates registration, login, logout, refresh and
// password changes. Refresh-token validity lives in the session store;
// access tokens are stateless.
type AuthService struct {
	users    domain.UserRepository
	tokens   TokenGenerator
	sessions domain.SessionStore
}

func NewAuthService(users domain.UserRepository, tokens TokenGenerator, sessions domain.SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return nil, apperror.BadRequest("email, first_name, last_name and password are required")
	}

	// Pre-check is an optimization only; the unique constraint on email
	// is the source of truth against concurrent registration.
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password fail identically.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	pair, err := s.issueAndStore(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		UserID:    user.ID.String(),
		TokenPair: *pair,
	}, nil
}

// Refresh rotates both tokens. The stored refresh token must exist and
// byte-equal the presented one; a mismatch signals reuse of a superseded
// token and fails rather than silently accepting either copy.
func (s *AuthService) Refresh(ctx context.Context, presented string) (*dto.TokenPair, error) {
	userID, kind, err := s.tokens.Verify(presented)
	if err != nil {
		return nil, err
	}
	if kind != TokenKindRefresh {
		return nil, apperror.ErrInvalidToken
	}

	stored, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == "" {
		return nil, apperror.ErrSessionNotFound
	}
	if stored != presented {
		return nil, apperror.ErrRefreshTokenMismatch
	}

	return s.issueAndStore(ctx, userID)
}

// Logout is idempotent; logging out without a session is not an error.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.Delete(ctx, userID)
}

// ChangePassword does not invalidate outstanding sessions; an already
// issued refresh token keeps working until it expires.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, input dto.ChangePasswordInput) (*domain.User, error) {
	if input.NewPassword == "" {
		return nil, apperror.BadRequest("new_password is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return nil, apperror.Unauthorized("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user.PasswordHash = string(hashed)
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) issueAndStore(ctx context.Context, userID uuid.UUID) (*dto.TokenPair, error) {
	accessToken, err := s.tokens.Issue(userID, TokenKindAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.Issue(userID, TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, userID, refreshToken, s.tokens.RefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
