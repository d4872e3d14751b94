package repository

import (
	"context"
	"errors"

	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is the page size used when the caller gives none.
	DefaultLimit = 10
	// MaxLimit caps a single page.
	MaxLimit = 100
)

// ClampPage normalizes offset and limit for list queries.
func ClampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}

// query binds db to ctx and opens a span and latency timer for one
// statement. The returned finish func must be called with the result.
func query(ctx context.Context, db *gorm.DB, op, table string) (*gorm.DB, func(error)) {
	ctx, span := observability.StartSpan(ctx, "repository", table+"."+op,
		attribute.String("db.operation", op),
		attribute.String("db.sql.table", table),
	)
	done := observability.TrackQuery(op, table)
	return db.WithContext(ctx), func(err error) {
		done()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		observability.EndSpan(span, err)
	}
}

// notFoundOr maps gorm.ErrRecordNotFound to a NotFound AppError and wraps
// anything else as internal.
func notFoundOr(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewInternalError(err)
}
