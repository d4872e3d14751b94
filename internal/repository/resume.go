package repository

import (
	"context"

	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"gorm.io/gorm"
)

// ResumeRepository defines the interface for resume data operations.
type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	GetByID(ctx context.Context, id uint) (*models.Resume, error)
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]models.Resume, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new resume repository.
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	db, finish := query(ctx, r.db, "insert", "resumes")
	err := db.Omit("Author").Create(resume).Error
	finish(err)
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *resumeRepository) GetByID(ctx context.Context, id uint) (*models.Resume, error) {
	db, finish := query(ctx, r.db, "select", "resumes")
	var resume models.Resume
	err := db.First(&resume, id).Error
	finish(err)
	if err != nil {
		return nil, notFoundOr(err, "Resume", id)
	}
	return &resume, nil
}

func (r *resumeRepository) Update(ctx context.Context, resume *models.Resume) error {
	db, finish := query(ctx, r.db, "update", "resumes")
	res := db.Model(resume).Omit("Author", "AuthorID", "CreatedAt").Select("*").Updates(resume)
	finish(res.Error)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Resume", resume.ID)
	}
	return nil
}

func (r *resumeRepository) Delete(ctx context.Context, id uint) error {
	db, finish := query(ctx, r.db, "delete", "resumes")
	res := db.Delete(&models.Resume{}, id)
	finish(res.Error)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Resume", id)
	}
	return nil
}

// List returns one page of resumes in id order.
func (r *resumeRepository) List(ctx context.Context, offset, limit int) ([]models.Resume, error) {
	offset, limit = ClampPage(offset, limit)
	db, finish := query(ctx, r.db, "select", "resumes")
	resumes := []models.Resume{}
	err := db.Order("id ASC").Offset(offset).Limit(limit).Find(&resumes).Error
	finish(err)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return resumes, nil
}

// ListByAuthor returns one page of the author's resumes in id order.
func (r *resumeRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Resume, error) {
	offset, limit = ClampPage(offset, limit)
	db, finish := query(ctx, r.db, "select", "resumes")
	resumes := []models.Resume{}
	err := db.Where("author_id = ?", authorID).Order("id ASC").Offset(offset).Limit(limit).Find(&resumes).Error
	finish(err)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return resumes, nil
}
