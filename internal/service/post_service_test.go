package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	repo := noopPostRepo()
	var stored *models.Post
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 42
		stored = p
		return nil
	}
	events := &recordingPublisher{}
	svc := NewPostService(repo, events)

	post, err := svc.CreatePost(context.Background(), &auth.Principal{ID: 7}, PostInput{Title: "Go dev", CompanyName: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, uint(42), post.ID)
	assert.Equal(t, uint(7), stored.AuthorID)
	assert.Equal(t, []string{models.EventPostCreated}, events.types())
	assert.Equal(t, uint(7), events.events[0].AuthorID)
}

func TestPostService_CreatePostValidation(t *testing.T) {
	svc := NewPostService(noopPostRepo(), nil)
	ctx := context.Background()
	p := &auth.Principal{ID: 1}

	_, err := svc.CreatePost(ctx, p, PostInput{})
	assert.True(t, models.IsCode(err, models.CodeValidation))

	_, err = svc.CreatePost(ctx, p, PostInput{Title: strings.Repeat("t", 301)})
	assert.True(t, models.IsCode(err, models.CodeValidation))

	_, err = svc.CreatePost(ctx, nil, PostInput{Title: "x"})
	assert.True(t, models.IsCode(err, models.CodeUnauthorized))
}

func TestPostService_UpdatePost(t *testing.T) {
	owner := &auth.Principal{ID: 1}
	stranger := &auth.Principal{ID: 2}

	tests := []struct {
		name        string
		principal   *auth.Principal
		postID      uint
		wantCode    string
		wantUpdated bool
	}{
		{"owner updates", owner, 10, "", true},
		{"non-owner is forbidden", stranger, 10, models.CodeForbidden, false},
		{"missing post is not found even for non-owner", stranger, 99, models.CodeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := noopPostRepo()
			existing := &models.Post{ID: 10, Title: "Old", Salary: "100", AuthorID: 1}
			repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
				if id != 10 {
					return nil, models.NewNotFoundError("Post", id)
				}
				cp := *existing
				return &cp, nil
			}
			updated := false
			repo.updateFn = func(_ context.Context, p *models.Post) error {
				updated = true
				assert.Equal(t, uint(1), p.AuthorID)
				return nil
			}
			events := &recordingPublisher{}
			svc := NewPostService(repo, events)

			post, err := svc.UpdatePost(context.Background(), tt.principal, tt.postID, input(PostInput{Title: "New"}))
			assert.Equal(t, tt.wantUpdated, updated)
			if tt.wantCode != "" {
				assert.True(t, models.IsCode(err, tt.wantCode), "got %v", err)
				assert.Empty(t, events.types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "New", post.Title)
			assert.Empty(t, post.Salary)
			assert.Equal(t, []string{models.EventPostUpdated}, events.types())
		})
	}
}

func TestPostService_UpdatePostDecodesAfterAuthorization(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		if id != 10 {
			return nil, models.NewNotFoundError("Post", id)
		}
		return &models.Post{ID: 10, Title: "Old", AuthorID: 1}, nil
	}
	svc := NewPostService(repo, nil)

	errBadBody := errors.New("bad body")
	decoded := false
	decode := func(*PostInput) error {
		decoded = true
		return errBadBody
	}

	_, err := svc.UpdatePost(context.Background(), &auth.Principal{ID: 2}, 10, decode)
	assert.True(t, models.IsCode(err, models.CodeForbidden), "got %v", err)
	_, err = svc.UpdatePost(context.Background(), &auth.Principal{ID: 2}, 99, decode)
	assert.True(t, models.IsCode(err, models.CodeNotFound), "got %v", err)
	assert.False(t, decoded)

	_, err = svc.UpdatePost(context.Background(), &auth.Principal{ID: 1}, 10, decode)
	assert.ErrorIs(t, err, errBadBody)
	assert.True(t, decoded)
}

func TestPostService_DeletePost(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 1}, nil
	}
	var deleted []uint
	repo.deleteFn = func(_ context.Context, id uint) error {
		deleted = append(deleted, id)
		return nil
	}
	events := &recordingPublisher{}
	svc := NewPostService(repo, events)
	ctx := context.Background()

	err := svc.DeletePost(ctx, &auth.Principal{ID: 2}, 5)
	assert.True(t, models.IsCode(err, models.CodeForbidden))
	assert.Empty(t, deleted)

	require.NoError(t, svc.DeletePost(ctx, &auth.Principal{ID: 1}, 5))
	assert.Equal(t, []uint{5}, deleted)
	assert.Equal(t, []string{models.EventPostDeleted}, events.types())
}

func TestPostService_ListPassesPaging(t *testing.T) {
	repo := noopPostRepo()
	repo.listFn = func(_ context.Context, offset, limit int) ([]models.Post, error) {
		assert.Equal(t, 20, offset)
		assert.Equal(t, 5, limit)
		return []models.Post{{ID: 21}}, nil
	}
	repo.listByAuthorFn = func(_ context.Context, authorID uint, _, _ int) ([]models.Post, error) {
		return []models.Post{{ID: 3, AuthorID: authorID}}, nil
	}
	svc := NewPostService(repo, nil)

	posts, err := svc.ListPosts(context.Background(), 20, 5)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	mine, err := svc.ListPostsByAuthor(context.Background(), 8, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(8), mine[0].AuthorID)
}
