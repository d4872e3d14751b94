package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/observability"
	"github.com/RefuJobs/RefuJobs-server/internal/repository"
	"github.com/RefuJobs/RefuJobs-server/internal/validation"
)

var (
	// ErrUnauthenticated is returned for every token or principal failure.
	// It never says which check failed.
	ErrUnauthenticated = models.NewUnauthorizedError("Could not validate credentials")
	// ErrInvalidCredentials is returned by Login for unknown emails and
	// wrong passwords alike.
	ErrInvalidCredentials = models.NewUnauthorizedError("Incorrect email or password")
)

// TokenTypeBearer is the token_type returned with access tokens.
const TokenTypeBearer = "bearer"

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Name      string      `json:"name"`
	Gender    string      `json:"gender"`
	Country   string      `json:"country"`
	Birthdate models.Date `json:"birthdate" swaggertype:"string" example:"1990-05-04"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService registers users, checks credentials and resolves bearer
// tokens to principals.
type AuthService struct {
	users  repository.UserRepository
	hasher auth.Hasher
	tokens *auth.TokenService

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService wires the auth flow to its collaborators.
func NewAuthService(users repository.UserRepository, hasher auth.Hasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user. A duplicate email is a Conflict whether the
// pre-check or the unique index catches it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateFields(
		validation.Field{Name: "name", Value: in.Name, Max: 100},
		validation.Field{Name: "gender", Value: in.Gender, Max: 32},
		validation.Field{Name: "country", Value: in.Country, Max: 100},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		observability.RecordAuthEvent("register", observability.OutcomeConflict)
		return nil, models.NewConflictError("Email already registered")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, models.NewValidationError(err.Error())
		}
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:     in.Email,
		Password:  hash,
		Name:      in.Name,
		Gender:    in.Gender,
		Country:   in.Country,
		Birthdate: in.Birthdate,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if models.IsCode(err, models.CodeConflict) {
			observability.RecordAuthEvent("register", observability.OutcomeConflict)
		}
		return nil, err
	}

	observability.RecordAuthEvent("register", observability.OutcomeSuccess)
	middleware.Logger.InfoContext(ctx, "User registered", slog.Uint64("user_id", uint64(user.ID)))
	return user, nil
}

// Login checks the credentials and issues an access token. Unknown email
// and wrong password produce the same error and cost the same bcrypt work.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		s.hasher.Verify(password, s.dummy())
		observability.RecordAuthEvent("login", observability.OutcomeFailure)
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.Password) {
		observability.RecordAuthEvent("login", observability.OutcomeFailure)
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.Email, 0)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.RecordAuthEvent("login", observability.OutcomeSuccess)
	return &TokenResponse{AccessToken: token, TokenType: TokenTypeBearer}, nil
}

// Resolve verifies rawToken and loads the user it names. Token failures and
// vanished users both yield ErrUnauthenticated; store failures stay
// internal errors.
func (s *AuthService) Resolve(ctx context.Context, rawToken string) (*auth.Principal, error) {
	subject, err := s.tokens.Verify(rawToken)
	if err != nil {
		observability.RecordAuthEvent("resolve", observability.OutcomeFailure)
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.RecordAuthEvent("resolve", observability.OutcomeFailure)
		return nil, ErrUnauthenticated
	}

	return &auth.Principal{ID: user.ID, Email: user.Email}, nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("refujobs-timing-equalizer")
	})
	return s.dummyHash
}
