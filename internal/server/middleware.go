package server

import (
	"context"
	"errors"
	"strings"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the bearer token to a principal. Every failure,
// whether a missing header, a bad token or an unknown user, gets the same
// 401 body.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return respondError(c, service.ErrUnauthenticated)
		}

		principal, err := s.authService.Resolve(c.UserContext(), token)
		if err != nil {
			return respondError(c, err)
		}

		// Logging and handlers read the identity from the user context.
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, principal.ID)
		c.SetUserContext(auth.WithPrincipal(ctx, principal))

		return c.Next()
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// currentPrincipal returns the principal AuthRequired stored, or nil.
func currentPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := auth.PrincipalFromContext(c.UserContext())
	return p
}

// respondError writes err in the standard error shape. 401s carry the
// bearer challenge and 5xx causes are logged.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errInvalidBody) {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	switch status := models.StatusFor(err); {
	case status == fiber.StatusUnauthorized:
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	case status >= fiber.StatusInternalServerError:
		middleware.Logger.ErrorContext(c.UserContext(), "Request failed",
			"path", c.Path(), "error", err.Error())
	}
	return models.RespondWithAppError(c, err)
}
