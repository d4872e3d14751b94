package server

import (
	"github.com/RefuJobs/RefuJobs-server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListResumes handles GET /resumes
// @Summary List the current user's resumes
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Success 200 {array} models.Resume
// @Failure 401 {object} models.ErrorResponse
// @Router /resumes [get]
func (s *Server) ListResumes(c *fiber.Ctx) error {
	page := parsePagination(c)
	resumes, err := s.resumeService.ListResumes(c.UserContext(), currentPrincipal(c), page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resumes)
}

// GetResume handles GET /resumes/:id
// @Summary Get one of the current user's resumes
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resume ID"
// @Success 200 {object} models.Resume
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /resumes/{id} [get]
func (s *Server) GetResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	resume, err := s.resumeService.GetResume(c.UserContext(), currentPrincipal(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resume)
}

// CreateResume handles POST /resumes
// @Summary Create a resume
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ResumeInput true "Resume"
// @Success 200 {object} models.Resume
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /resumes [post]
func (s *Server) CreateResume(c *fiber.Ctx) error {
	var req service.ResumeInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	resume, err := s.resumeService.CreateResume(c.UserContext(), currentPrincipal(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resume)
}

// UpdateResume handles PUT /resumes/:id
// @Summary Replace a resume
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resume ID"
// @Param request body service.ResumeInput true "Resume"
// @Success 200 {object} models.Resume
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /resumes/{id} [put]
func (s *Server) UpdateResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	resume, err := s.resumeService.UpdateResume(c.UserContext(), currentPrincipal(c), id, bodyDecoder[service.ResumeInput](c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resume)
}

// DeleteResume handles DELETE /resumes/:id
// @Summary Delete a resume
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resume ID"
// @Success 200 {object} messageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /resumes/{id} [delete]
func (s *Server) DeleteResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.resumeService.DeleteResume(c.UserContext(), currentPrincipal(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(messageResponse{Message: "Resume deleted successfully"})
}
