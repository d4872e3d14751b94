package server

import (
	"errors"
	"strings"
	"unicode"

	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/repository"
	"github.com/RefuJobs/RefuJobs-server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed offset/limit query parameters.
type Pagination struct {
	Offset int
	Limit  int
}

// parsePagination reads offset and limit, clamped the same way the
// repositories clamp them.
func parsePagination(c *fiber.Ctx) Pagination {
	offset, limit := repository.ClampPage(
		c.QueryInt("offset", 0),
		c.QueryInt("limit", repository.DefaultLimit),
	)
	return Pagination{Offset: offset, Limit: limit}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// errInvalidBody reports an undecodable request body. It is answered with
// 400, unlike field validation failures.
var errInvalidBody = models.NewValidationError("Invalid request body")

// parseBody decodes the request body into out, writing a 400 on failure.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest, errInvalidBody)
		return errResponseWritten
	}
	return nil
}

// bodyDecoder defers decoding until the service has authorized the update,
// so a bad body never masks a 403 or 404.
func bodyDecoder[T any](c *fiber.Ctx) service.Decoder[T] {
	return func(out *T) error {
		if err := c.BodyParser(out); err != nil {
			return errInvalidBody
		}
		return nil
	}
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		words := splitCamel(param[:len(param)-2])
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

type messageResponse struct {
	Message string `json:"message"`
}
