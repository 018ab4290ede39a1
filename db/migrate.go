package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The cascade rules here are load-bearing: deleting a blog removes its
// comments, and deleting a comment removes its replies transitively.
// Services never walk the comment tree on delete.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY,
		blog_id UUID NOT NULL REFERENCES blogs(id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		parent_id UUID REFERENCES comments(id) ON DELETE CASCADE,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS blog_likes (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		blog_id UUID NOT NULL REFERENCES blogs(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, blog_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comment_likes (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		comment_id UUID NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, comment_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_blog_id ON comments(blog_id)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_parent_id ON comments(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_author_id ON blogs(author_id)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
