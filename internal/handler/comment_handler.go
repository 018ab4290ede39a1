package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnvillamor/blogsite/internal/dto"
	"github.com/jnvillamor/blogsite/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateForBlog creates a comment (or a reply, when parent_id is set)
// on the blog named in the path. The path wins over any blog_id in the
// body.
func (h *CommentHandler) CreateForBlog(c *fiber.Ctx) error {
	blogID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var input dto.CommentCreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	input.BlogID = blogID.String()

	comment, err := h.commentService.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCommentResponse(comment))
}

// ListForBlog returns the blog's top-level comments.
func (h *CommentHandler) ListForBlog(c *fiber.Ctx) error {
	blogID, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	limit, offset := pageParams(c)

	comments, total, err := h.commentService.ListTopLevel(c.Context(), &blogID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(
		dto.NewPaginatedResponse(dto.NewCommentResponses(comments), total, limit, offset))
}

// List is the global top-level comment feed across all blogs.
func (h *CommentHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)

	comments, total, err := h.commentService.ListTopLevel(c.Context(), nil, limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(
		dto.NewPaginatedResponse(dto.NewCommentResponses(comments), total, limit, offset))
}

func (h *CommentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	comment, err := h.commentService.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewCommentResponse(comment))
}

func (h *CommentHandler) ListReplies(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	limit, offset := pageParams(c)

	replies, total, err := h.commentService.ListReplies(c.Context(), id, limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(
		dto.NewPaginatedResponse(dto.NewCommentResponses(replies), total, limit, offset))
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var input dto.CommentUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	comment, err := h.commentService.Update(c.Context(), id, input, CurrentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewCommentResponse(comment))
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.commentService.Delete(c.Context(), id, CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "comment deleted"})
}

func (h *CommentHandler) Like(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.commentService.Like(c.Context(), id, CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "comment liked"})
}

func (h *CommentHandler) Unlike(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.commentService.Unlike(c.Context(), id, CurrentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "comment unliked"})
}
