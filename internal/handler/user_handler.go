package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnvillamor/blogsite/internal/dto"
	"github.com/jnvillamor/blogsite/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.Context(), CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) ListBlogs(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	limit, offset := pageParams(c)

	blogs, total, err := h.userService.ListBlogs(c.Context(), id, limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		items = append(items, dto.NewBlogResponse(&blogs[i]))
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewPaginatedResponse(items, total, limit, offset))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var input dto.UserUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.userService.Update(c.Context(), CurrentUserID(c), id, input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(user))
}
