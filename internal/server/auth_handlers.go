package server

import (
	"github.com/RefuJobs/RefuJobs-server/internal/service"

	"github.com/gofiber/fiber/v2"
)

// loginRequest accepts the JSON body {email, password} or the OAuth2
// password form, where the email travels as "username".
type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Register handles POST /register
// @Summary Register a user
// @Description Create an account. The email must not be registered yet.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "Registration"
// @Success 200 {object} messageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if _, err := s.authService.Register(c.UserContext(), req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(messageResponse{Message: "User registered successfully"})
}

// Login handles POST /login
// @Summary Log in
// @Description Exchange email and password for a bearer token.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} service.TokenResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}
	if email == "" || req.Password == "" {
		return respondError(c, service.ErrInvalidCredentials)
	}

	token, err := s.authService.Login(c.UserContext(), email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(token)
}

