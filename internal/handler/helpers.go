package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperror "github.com/jnvillamor/blogsite/internal/errors"
	"github.com/jnvillamor/blogsite/pkg/constant"
)

// respondError maps an error kind to its HTTP status. Internal and
// unclassified errors are logged in full and surfaced opaquely.
func respondError(c *fiber.Ctx, err error) error {
	switch apperror.KindOf(err) {
	case apperror.KindBadRequest, apperror.KindConflict:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperror.KindUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case apperror.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case apperror.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("error: %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperror.BadRequest("invalid " + name)
	}
	return id, nil
}

// pageParams clamps the query values so the paginated envelope always
// reports the limit and offset actually served.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", constant.DefaultPageLimit)
	offset := c.QueryInt("offset", 0)

	if limit <= 0 {
		limit = constant.DefaultPageLimit
	}
	if limit > constant.MaxPageLimit {
		limit = constant.MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
