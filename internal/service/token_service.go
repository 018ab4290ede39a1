package service

//go:generate mockgen -destination=../mocks/mock_token_generator.go -package=mocks github.com/jnvillamor/blogsite/internal/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperror "github.com/jnvillamor/blogsite/internal/errors"
)

type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

type TokenGenerator interface {
	Issue(userID uuid.UUID, kind TokenKind) (string, error)
	Verify(tokenString string) (uuid.UUID, TokenKind, error)
	AccessTokenExpiry() time.Duration
	RefreshTokenExpiry() time.Duration
}

// TokenService signs and validates both token kinds with one symmetric
// secret. Tokens are the sole carrier of state; nothing is persisted
// here.
type TokenService struct {
	secret             string
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

func NewTokenService(secret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		secret:             secret,
		accessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		refreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) ttl(kind TokenKind) time.Duration {
	if kind == TokenKindRefresh {
		return ts.refreshTokenExpiry
	}
	return ts.accessTokenExpiry
}

// Issue encodes {user_id, exp, type} and signs it with HS256.
func (ts *TokenService) Issue(userID uuid.UUID, kind TokenKind) (string, error) {
	claims := JWTCustomClaims{
		UserID: userID.String(),
		Type:   string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ts.ttl(kind))),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.secret))
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("sign %s token: %w", kind, err))
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Expiry is reported as its own failure; every other structural or
// signature problem collapses into an invalid-token error.
func (ts *TokenService) Verify(tokenString string) (uuid.UUID, TokenKind, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", apperror.ErrTokenExpired
		}
		return uuid.Nil, "", apperror.ErrInvalidToken
	}

	if !token.Valid {
		return uuid.Nil, "", apperror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", apperror.ErrInvalidToken
	}

	kind := TokenKind(claims.Type)
	if kind != TokenKindAccess && kind != TokenKindRefresh {
		return uuid.Nil, "", apperror.ErrInvalidToken
	}

	return userID, kind, nil
}

func (ts *TokenService) AccessTokenExpiry() time.Duration {
	return ts.accessTokenExpiry
}

func (ts *TokenService) RefreshTokenExpiry() time.Duration {
	return ts.refreshTokenExpiry
}
