package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /users/me
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.userService.CurrentProfile(c.UserContext(), currentPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetMyPosts handles GET /users/me/posts
// @Summary Posts written by the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} models.Post
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me/posts [get]
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	page := parsePagination(c)
	posts, err := s.postService.ListPostsByAuthor(c.UserContext(), currentPrincipal(c).ID, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles GET /users/:id/posts
// @Summary Posts written by a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /users/{id}/posts [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c)
	posts, err := s.postService.ListPostsByAuthor(c.UserContext(), userID, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}
