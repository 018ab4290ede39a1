package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jnvillamor/blogsite/internal/domain"
)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Every read annotates each comment with its direct-child count via a
// correlated subquery; the count is never stored.
const commentColumns = `
	c.id, c.blog_id, c.author_id, c.parent_id, c.content, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id) AS reply_count
`

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommentWithReplies, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comments (id, blog_id, author_id, parent_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, comment.ID, comment.BlogID, comment.AuthorID, comment.ParentID,
		comment.Content, comment.CreatedAt, comment.UpdatedAt)

	return err
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	_, err := r.db.Exec(ctx, `
		UPDATE comments
		SET blog_id = $2, author_id = $3, parent_id = $4, content = $5, updated_at = $6
		WHERE id = $1
	`, comment.ID, comment.BlogID, comment.AuthorID, comment.ParentID,
		comment.Content, comment.UpdatedAt)

	return err
}

// Delete removes the comment; the parent_id cascade rule takes every
// descendant reply with it.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// ListTopLevel pages through parentless comments newest first, with the
// id as a tie-break so equal timestamps order deterministically across
// pages. A nil blogID spans all blogs.
func (r *CommentRepository) ListTopLevel(ctx context.Context, blogID *uuid.UUID, limit, offset int) ([]domain.CommentWithReplies, int, error) {
	var (
		total int
		rows  pgx.Rows
		err   error
	)

	if blogID != nil {
		countQuery := `SELECT COUNT(*) FROM comments WHERE blog_id = $1 AND parent_id IS NULL`
		if err = r.db.QueryRow(ctx, countQuery, *blogID).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count top-level comments: %w", err)
		}

		query := `
			SELECT ` + commentColumns + `
			FROM comments c
			WHERE c.blog_id = $1 AND c.parent_id IS NULL
			ORDER BY c.created_at DESC, c.id DESC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.db.Query(ctx, query, *blogID, limit, offset)
	} else {
		countQuery := `SELECT COUNT(*) FROM comments WHERE parent_id IS NULL`
		if err = r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count top-level comments: %w", err)
		}

		query := `
			SELECT ` + commentColumns + `
			FROM comments c
			WHERE c.parent_id IS NULL
			ORDER BY c.created_at DESC, c.id DESC
			LIMIT $1 OFFSET $2;
		`
		rows, err = r.db.Query(ctx, query, limit, offset)
	}

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list top-level comments: %w", err)
	}
	defer rows.Close()

	comments, err := scanComments(rows)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *CommentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, limit, offset int) ([]domain.CommentWithReplies, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE parent_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, parentID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count replies: %w", err)
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		WHERE c.parent_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, parentID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	comments, err := scanComments(rows)
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *CommentRepository) AddLike(ctx context.Context, commentID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comment_likes (user_id, comment_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, comment_id) DO NOTHING
	`, userID, commentID)

	return err
}

func (r *CommentRepository) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM comment_likes WHERE user_id = $1 AND comment_id = $2
	`, userID, commentID)

	return err
}

func scanComment(row pgx.Row) (*domain.CommentWithReplies, error) {
	var comment domain.CommentWithReplies
	err := row.Scan(&comment.ID, &comment.BlogID, &comment.AuthorID, &comment.ParentID,
		&comment.Content, &comment.CreatedAt, &comment.UpdatedAt, &comment.ReplyCount)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func scanComments(rows pgx.Rows) ([]domain.CommentWithReplies, error) {
	var comments []domain.CommentWithReplies
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}
