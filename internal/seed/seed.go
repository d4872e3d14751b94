package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers       int
	PostsPerUser   int
	ResumesPerUser int
	BatchSize      int
	ShouldClean    bool

	// Password is shared by every generated user. Empty means DefaultPassword.
	Password   string
	BcryptCost int
	// RandomSeed makes generated data reproducible when non-zero.
	RandomSeed int64
}

// DefaultOptions returns a small demo data set.
func DefaultOptions() Options {
	return Options{
		NumUsers:       10,
		PostsPerUser:   3,
		ResumesPerUser: 1,
		BatchSize:      100,
		BcryptCost:     bcrypt.DefaultCost,
	}
}

// Result counts what Seed created.
type Result struct {
	Users   int
	Posts   int
	Resumes int
}

// Seed populates the database with generated users, posts and resumes.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (*Result, error) {
	logger := middleware.Logger
	logger.InfoContext(ctx, "Starting database seeding",
		slog.Int("users", opts.NumUsers),
		slog.Int("posts_per_user", opts.PostsPerUser),
		slog.Int("resumes_per_user", opts.ResumesPerUser))

	db = db.WithContext(ctx)

	if opts.ShouldClean {
		if err := ClearData(db); err != nil {
			return nil, fmt.Errorf("clear data: %w", err)
		}
	}

	factory, err := NewFactory(db, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	posts := make([]*models.Post, 0, opts.NumUsers*opts.PostsPerUser)

	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return result, fmt.Errorf("create user: %w", err)
		}
		result.Users++

		for j := 0; j < opts.PostsPerUser; j++ {
			posts = append(posts, factory.BuildPost(user))
		}
		for j := 0; j < opts.ResumesPerUser; j++ {
			if _, err := factory.CreateResume(user); err != nil {
				return result, fmt.Errorf("create resume: %w", err)
			}
			result.Resumes++
		}
	}

	if err := factory.CreatePostsBatch(posts, opts.BatchSize); err != nil {
		return result, fmt.Errorf("create posts: %w", err)
	}
	result.Posts = len(posts)

	logger.InfoContext(ctx, "Database seeding completed",
		slog.Int("users", result.Users),
		slog.Int("posts", result.Posts),
		slog.Int("resumes", result.Resumes))
	return result, nil
}

// ClearData removes every user, post and resume.
func ClearData(db *gorm.DB) error {
	middleware.Logger.Info("Clearing existing data")
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`TRUNCATE TABLE resumes, posts, users RESTART IDENTITY CASCADE`).Error
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Resume{}, &models.Post{}, &models.User{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
