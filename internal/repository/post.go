package repository

import (
	"context"

	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	db, finish := query(ctx, r.db, "insert", "posts")
	err := db.Omit("Author").Create(post).Error
	finish(err)
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	db, finish := query(ctx, r.db, "select", "posts")
	var post models.Post
	err := db.First(&post, id).Error
	finish(err)
	if err != nil {
		return nil, notFoundOr(err, "Post", id)
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	db, finish := query(ctx, r.db, "update", "posts")
	res := db.Model(post).Omit("Author", "AuthorID", "CreatedAt").Select("*").Updates(post)
	finish(res.Error)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", post.ID)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	db, finish := query(ctx, r.db, "delete", "posts")
	res := db.Delete(&models.Post{}, id)
	finish(res.Error)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

// List returns one page of posts in id order.
func (r *postRepository) List(ctx context.Context, offset, limit int) ([]models.Post, error) {
	offset, limit = ClampPage(offset, limit)
	db, finish := query(ctx, r.db, "select", "posts")
	posts := []models.Post{}
	err := db.Order("id ASC").Offset(offset).Limit(limit).Find(&posts).Error
	finish(err)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListByAuthor returns one page of the author's posts in id order.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error) {
	offset, limit = ClampPage(offset, limit)
	db, finish := query(ctx, r.db, "select", "posts")
	posts := []models.Post{}
	err := db.Where("author_id = ?", authorID).Order("id ASC").Offset(offset).Limit(limit).Find(&posts).Error
	finish(err)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}
