package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnvillamor/blogsite/internal/dto"
	"github.com/jnvillamor/blogsite/internal/service"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var input dto.BlogCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	blog, err := h.blogService.Create(c.Context(), input, CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewBlogResponse(blog))
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)

	blogs, total, err := h.blogService.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	items := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		items = append(items, dto.NewBlogResponse(&blogs[i]))
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewPaginatedResponse(items, total, limit, offset))
}

func (h *BlogHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	blog, err := h.blogService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewBlogResponse(blog))
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var input dto.BlogUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	blog, err := h.blogService.Update(c.Context(), id, input, CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewBlogResponse(blog))
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.blogService.Delete(c.Context(), id, CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "blog deleted"})
}

func (h *BlogHandler) Like(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.blogService.Like(c.Context(), id, CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "blog liked"})
}

func (h *BlogHandler) Unlike(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.blogService.Unlike(c.Context(), id, CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "blog unliked"})
}
