package service

import (
	"context"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CurrentProfile loads the principal's profile. A user deleted after the
// token was resolved is reported as unauthenticated.
func (s *UserService) CurrentProfile(ctx context.Context, principal *auth.Principal) (*models.Profile, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(ctx, principal.ID)
	if err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}
