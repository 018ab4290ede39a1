package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jnvillamor/blogsite/config"
	"github.com/jnvillamor/blogsite/db"
	"github.com/jnvillamor/blogsite/internal/handler"
	"github.com/jnvillamor/blogsite/internal/repository/postgres"
	"github.com/jnvillamor/blogsite/internal/service"
	"github.com/jnvillamor/blogsite/internal/session"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	redisClient := session.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	blogRepo := postgres.NewBlogRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	sessionStore := session.NewRedisStore(redisClient)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	authService := service.NewAuthService(userRepo, tokenService, sessionStore)
	userService := service.NewUserService(userRepo, blogRepo)
	blogService := service.NewBlogService(blogRepo)
	commentService := service.NewCommentService(commentRepo, blogRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService, tokenService)
	userHandler := handler.NewUserHandler(userService)
	blogHandler := handler.NewBlogHandler(blogService)
	commentHandler := handler.NewCommentHandler(commentService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	handler.RegisterRoutes(app, authHandler, userHandler, blogHandler, commentHandler,
		handler.RequireAuth(tokenService))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
