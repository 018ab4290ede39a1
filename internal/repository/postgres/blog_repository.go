package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jnvillamor/blogsite/internal/domain"
)

type BlogRepository struct {
	db DBTX
}

func NewBlogRepository(db DBTX) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var blog domain.Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID,
		&blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return &blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blogs (id, title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, blog.ID, blog.Title, blog.Content, blog.AuthorID, blog.CreatedAt, blog.UpdatedAt)

	return err
}

func (r *BlogRepository) Update(ctx context.Context, blog *domain.Blog) error {
	_, err := r.db.Exec(ctx, `
		UPDATE blogs
		SET title = $2, content = $3, updated_at = $4
		WHERE id = $1
	`, blog.ID, blog.Title, blog.Content, blog.UpdatedAt)

	return err
}

// Delete relies on the schema cascade to remove the blog's comments and
// likes along with it.
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	return err
}

func (r *BlogRepository) List(ctx context.Context, limit, offset int) ([]domain.Blog, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs, err := scanBlogs(rows)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *BlogRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]domain.Blog, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blogs WHERE author_id = $1`, authorID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs by author: %w", err)
	}

	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM blogs
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blogs by author: %w", err)
	}
	defer rows.Close()

	blogs, err := scanBlogs(rows)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// AddLike is idempotent; a repeated like of the same blog is a no-op.
func (r *BlogRepository) AddLike(ctx context.Context, blogID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO blog_likes (user_id, blog_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, blog_id) DO NOTHING
	`, userID, blogID)

	return err
}

func (r *BlogRepository) RemoveLike(ctx context.Context, blogID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM blog_likes WHERE user_id = $1 AND blog_id = $2
	`, userID, blogID)

	return err
}

func scanBlogs(rows pgx.Rows) ([]domain.Blog, error) {
	var blogs []domain.Blog
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID,
			&blog.CreatedAt, &blog.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blogs: %w", err)
	}
	return blogs, nil
}
