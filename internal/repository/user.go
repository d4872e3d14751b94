// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"github.com/RefuJobs/RefuJobs-server/internal/database"
	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmail returns nil, nil when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	db, finish := query(ctx, r.db, "select", "users")
	var user models.User
	err := db.First(&user, id).Error
	finish(err)
	if err != nil {
		return nil, notFoundOr(err, "User", id)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	db, finish := query(ctx, r.db, "select", "users")
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	finish(err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Create inserts user. The unique index on email is the authoritative
// duplicate guard; a violation surfaces as a Conflict.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	db, finish := query(ctx, r.db, "insert", "users")
	err := db.Create(user).Error
	finish(err)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.NewConflictError("Email already registered")
		}
		return models.NewInternalError(err)
	}
	return nil
}
