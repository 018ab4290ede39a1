package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/jnvillamor/blogsite/internal/repository/postgres"
)

var commentColumns = []string{"id", "blog_id", "author_id", "parent_id", "content", "created_at", "updated_at", "reply_count"}

func TestCommentRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCommentRepository(mock)
	ctx := context.Background()
	commentID := uuid.New()
	blogID := uuid.New()

	t.Run("success carries reply count", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(commentID).
			WillReturnRows(pgxmock.NewRows(commentColumns).
				AddRow(commentID, blogID, uuid.New(), nil, "hello", time.Now(), time.Now(), 3))

		comment, err := r.GetByID(ctx, commentID)
		require.NoError(t, err)
		assert.Equal(t, commentID, comment.ID)
		assert.Equal(t, 3, comment.ReplyCount)
		assert.Nil(t, comment.ParentID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT").
			WithArgs(commentID).
			WillReturnError(pgx.ErrNoRows)

		comment, err := r.GetByID(ctx, commentID)
		require.NoError(t, err)
		assert.Nil(t, comment)
	})
}

func TestCommentRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCommentRepository(mock)
	ctx := context.Background()

	t.Run("top-level comment", func(t *testing.T) {
		comment := newTestComment()

		mock.ExpectExec("INSERT INTO comments").
			WithArgs(comment.ID, comment.BlogID, comment.AuthorID, comment.ParentID,
				comment.Content, comment.CreatedAt, comment.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, comment))
	})

	t.Run("reply", func(t *testing.T) {
		comment := newTestComment()
		parentID := uuid.New()
		comment.ParentID = &parentID

		mock.ExpectExec("INSERT INTO comments").
			WithArgs(comment.ID, comment.BlogID, comment.AuthorID, comment.ParentID,
				comment.Content, comment.CreatedAt, comment.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, comment))
	})
}

// Delete issues a single statement; descendant replies go with the row
// through the parent_id cascade.
func TestCommentRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCommentRepository(mock)
	commentID := uuid.New()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(commentID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, r.Delete(context.Background(), commentID))
}

func TestCommentRepository_ListTopLevel(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCommentRepository(mock)
	ctx := context.Background()
	blogID := uuid.New()

	t.Run("scoped to one blog", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(blogID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectQuery("SELECT").
			WithArgs(blogID, 2, 0).
			WillReturnRows(pgxmock.NewRows(commentColumns).
				AddRow(uuid.New(), blogID, uuid.New(), nil, "newest", time.Now(), time.Now(), 2).
				AddRow(uuid.New(), blogID, uuid.New(), nil, "older", time.Now(), time.Now(), 0))

		comments, total, err := r.ListTopLevel(ctx, &blogID, 2, 0)
		require.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, 5, total)
		assert.Equal(t, 2, comments[0].ReplyCount)
	})

	t.Run("global feed", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT").
			WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows(commentColumns).
				AddRow(uuid.New(), blogID, uuid.New(), nil, "anywhere", time.Now(), time.Now(), 0))

		comments, total, err := r.ListTopLevel(ctx, nil, 10, 0)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, 1, total)
	})
}

func TestCommentRepository_ListReplies(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCommentRepository(mock)
	ctx := context.Background()
	parentID := uuid.New()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(parentID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT").
		WithArgs(parentID, 10, 0).
		WillReturnRows(pgxmock.NewRows(commentColumns).
			AddRow(uuid.New(), uuid.New(), uuid.New(), &parentID, "reply one", time.Now(), time.Now(), 1).
			AddRow(uuid.New(), uuid.New(), uuid.New(), &parentID, "reply two", time.Now(), time.Now(), 0))

	replies, total, err := r.ListReplies(ctx, parentID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, replies, 2)
	assert.Equal(t, 2, total)
	require.NotNil(t, replies[0].ParentID)
	assert.Equal(t, parentID, *replies[0].ParentID)
}

func TestCommentRepository_Likes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewCommentRepository(mock)
	ctx := context.Background()
	commentID := uuid.New()
	userID := uuid.New()

	t.Run("add like", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO comment_likes").
			WithArgs(userID, commentID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.AddLike(ctx, commentID, userID))
	})

	t.Run("remove like", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM comment_likes").
			WithArgs(userID, commentID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, r.RemoveLike(ctx, commentID, userID))
	})
}
