package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jnvillamor/blogsite/internal/dto"
	apperror "github.com/jnvillamor/blogsite/internal/errors"
	"github.com/jnvillamor/blogsite/internal/service"
	"github.com/jnvillamor/blogsite/pkg/constant"
)

type AuthHandler struct {
	authService *service.AuthService
	tokens      service.TokenGenerator
}

func NewAuthHandler(authService *service.AuthService, tokens service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	h.setRefreshCookie(c, out.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(out)
}

// Refresh reads the refresh token from its HTTP-only cookie only; the
// request body is never consulted.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	presented := c.Cookies(constant.RefreshTokenCookie)
	if presented == "" {
		return respondError(c, apperror.ErrSessionNotFound)
	}

	pair, err := h.authService.Refresh(c.Context(), presented)
	if err != nil {
		return respondError(c, err)
	}

	h.setRefreshCookie(c, pair.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context(), CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	h.clearRefreshCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.authService.ChangePassword(c.Context(), CurrentUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(user))
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(h.tokens.RefreshTokenExpiry()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
