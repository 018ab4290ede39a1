package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, users *UserHandler, blogs *BlogHandler, comments *CommentHandler, requireAuth fiber.Handler) {
	api := app.Group("/api/v1")

	api.Post("/auth/register", auth.Register)
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/refresh", auth.Refresh)
	api.Post("/auth/logout", requireAuth, auth.Logout)
	api.Put("/auth/password", requireAuth, auth.ChangePassword)

	api.Get("/users/me", requireAuth, users.Me)
	api.Get("/users/:id", users.GetByID)
	api.Get("/users/:id/blogs", users.ListBlogs)
	api.Put("/users/:id", requireAuth, users.Update)

	api.Post("/blogs", requireAuth, blogs.Create)
	api.Get("/blogs", blogs.List)
	api.Get("/blogs/:id", blogs.GetByID)
	api.Put("/blogs/:id", requireAuth, blogs.Update)
	api.Delete("/blogs/:id", requireAuth, blogs.Delete)
	api.Post("/blogs/:id/like", requireAuth, blogs.Like)
	api.Delete("/blogs/:id/like", requireAuth, blogs.Unlike)

	api.Post("/blogs/:id/comments", requireAuth, comments.CreateForBlog)
	api.Get("/blogs/:id/comments", comments.ListForBlog)

	api.Get("/comments", comments.List)
	api.Get("/comments/:id", comments.GetByID)
	api.Get("/comments/:id/replies", comments.ListReplies)
	api.Put("/comments/:id", requireAuth, comments.Update)
	api.Delete("/comments/:id", requireAuth, comments.Delete)
	api.Post("/comments/:id/like", requireAuth, comments.Like)
	api.Delete("/comments/:id/like", requireAuth, comments.Unlike)
}
