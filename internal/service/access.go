// Package service holds the business rules between HTTP handlers and the
// repositories.
package service

import (
	"fmt"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
)

// Decoder fills an update payload. Update operations call it only after the
// target has been loaded and authorized.
type Decoder[T any] func(*T) error

// AuthorizeMutation allows the change only when principal authored resource.
// Callers load the resource first so that a missing id reports NotFound
// before any ownership decision.
func AuthorizeMutation(principal *auth.Principal, resource models.Owned) error {
	return authorizeOwner(principal, resource, "modify")
}

func authorizeOwner(principal *auth.Principal, resource models.Owned, verb string) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if resource.OwnerID() != principal.ID {
		return models.NewForbiddenError(fmt.Sprintf("Not authorized to %s this %s", verb, resource.Kind()))
	}
	return nil
}
