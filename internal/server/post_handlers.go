package server

import (
	"github.com/RefuJobs/RefuJobs-server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /posts
// @Summary List job postings
// @Tags posts
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) ListPosts(c *fiber.Ctx) error {
	page := parsePagination(c)
	posts, err := s.postService.ListPosts(c.UserContext(), page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
// @Summary Get a job posting
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /posts
// @Summary Create a job posting
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PostInput true "Post"
// @Success 200 {object} models.Post
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.PostInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	post, err := s.postService.CreatePost(c.UserContext(), currentPrincipal(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /posts/:id
// @Summary Replace a job posting
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body service.PostInput true "Post"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	post, err := s.postService.UpdatePost(c.UserContext(), currentPrincipal(c), id, bodyDecoder[service.PostInput](c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
// @Summary Delete a job posting
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} messageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.postService.DeletePost(c.UserContext(), currentPrincipal(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(messageResponse{Message: "Post deleted successfully"})
}
