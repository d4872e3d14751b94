package repository

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		offset, limit         int
		wantOffset, wantLimit int
	}{
		{0, 0, 0, DefaultLimit},
		{-5, 10, 0, 10},
		{3, 1000, 3, MaxLimit},
		{20, 25, 20, 25},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d", tt.offset, tt.limit), func(t *testing.T) {
			o, l := ClampPage(tt.offset, tt.limit)
			assert.Equal(t, tt.wantOffset, o)
			assert.Equal(t, tt.wantLimit, l)
		})
	}
}

func TestPostRepository_ListOrdersByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" ORDER BY id ASC LIMIT $1`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "author_id"}).
			AddRow(1, "Backend engineer", 1).
			AddRow(2, "SRE", 2))

	posts, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "SRE", posts[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CRUD(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	author := testutil.CreateUser(t, db, "author@x.io")

	post := &models.Post{Title: "Go developer", CompanyName: "Acme", JobType: "full-time", AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)

	got.Title = "Senior Go developer"
	got.Salary = ""
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go developer", reloaded.Title)
	assert.Equal(t, author.ID, reloaded.AuthorID)

	require.NoError(t, repo.Delete(ctx, post.ID))
	_, err = repo.GetByID(ctx, post.ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	err = repo.Delete(ctx, post.ID)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestPostRepository_Pagination(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice@x.io")
	bob := testutil.CreateUser(t, db, "bob@x.io")

	for i := 0; i < 15; i++ {
		author := alice
		if i%3 == 0 {
			author = bob
		}
		require.NoError(t, repo.Create(ctx, &models.Post{Title: fmt.Sprintf("post %02d", i), AuthorID: author.ID}))
	}

	first, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, first, 10)
	for i := 1; i < len(first); i++ {
		assert.Less(t, first[i-1].ID, first[i].ID)
	}

	rest, err := repo.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, rest, 5)
	assert.Equal(t, first[9].ID+1, rest[0].ID)

	skipped, err := repo.List(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, skipped, 2)
	assert.Equal(t, first[3].ID, skipped[0].ID)

	bobs, err := repo.ListByAuthor(ctx, bob.ID, 0, 100)
	require.NoError(t, err)
	assert.Len(t, bobs, 5)
	for _, p := range bobs {
		assert.Equal(t, bob.ID, p.AuthorID)
	}

	none, err := repo.ListByAuthor(ctx, 9999, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPostRepository_RequiresExistingAuthor(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPostRepository(db)

	err := repo.Create(context.Background(), &models.Post{Title: "orphan", AuthorID: 4242})
	assert.True(t, models.IsCode(err, models.CodeInternal))
}
