package service

import (
	"context"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/repository"
	"github.com/RefuJobs/RefuJobs-server/internal/validation"
)

// ResumeInput carries the editable fields of a resume. PUT replaces all of
// them.
type ResumeInput struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber"`
	Education   string `json:"education"`
	Location    string `json:"location"`
	Introduce   string `json:"introduce"`
}

func (in ResumeInput) validate() error {
	err := validation.ValidateFields(
		validation.Field{Name: "title", Value: in.Title, Max: 300, Required: true},
		validation.Field{Name: "name", Value: in.Name, Max: 100},
		validation.Field{Name: "gender", Value: in.Gender, Max: 32},
		validation.Field{Name: "email", Value: in.Email, Max: 254},
		validation.Field{Name: "phonenumber", Value: in.PhoneNumber, Max: 32},
		validation.Field{Name: "education", Value: in.Education, Max: 100},
		validation.Field{Name: "location", Value: in.Location, Max: 200},
		validation.Field{Name: "introduce", Value: in.Introduce, Max: 20000},
	)
	if err != nil {
		return models.NewValidationError(err.Error())
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return models.NewValidationError(err.Error())
		}
	}
	return nil
}

func (in ResumeInput) apply(r *models.Resume) {
	r.Title = in.Title
	r.Name = in.Name
	r.Gender = in.Gender
	r.Email = in.Email
	r.PhoneNumber = in.PhoneNumber
	r.Education = in.Education
	r.Location = in.Location
	r.Introduce = in.Introduce
}

// ResumeService manages resumes. A resume holds contact details, so every
// operation is limited to its author.
type ResumeService struct {
	resumes repository.ResumeRepository
	events  EventPublisher
}

// NewResumeService returns a ResumeService. A nil publisher disables events.
func NewResumeService(resumes repository.ResumeRepository, events EventPublisher) *ResumeService {
	return &ResumeService{resumes: resumes, events: publisherOrNoop(events)}
}

func (s *ResumeService) CreateResume(ctx context.Context, principal *auth.Principal, in ResumeInput) (*models.Resume, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	resume := &models.Resume{AuthorID: principal.ID}
	in.apply(resume)
	if err := s.resumes.Create(ctx, resume); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, models.NewJobEvent(models.EventResumeCreated, resume, resume.ID))
	return resume, nil
}

// GetResume returns the resume if principal wrote it.
func (s *ResumeService) GetResume(ctx context.Context, principal *auth.Principal, id uint) (*models.Resume, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(principal, resume, "view"); err != nil {
		return nil, err
	}
	return resume, nil
}

// ListResumes pages through the principal's own resumes.
func (s *ResumeService) ListResumes(ctx context.Context, principal *auth.Principal, offset, limit int) ([]models.Resume, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	return s.resumes.ListByAuthor(ctx, principal.ID, offset, limit)
}

func (s *ResumeService) UpdateResume(ctx context.Context, principal *auth.Principal, id uint, decode Decoder[ResumeInput]) (*models.Resume, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(principal, resume); err != nil {
		return nil, err
	}
	var in ResumeInput
	if err := decode(&in); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	in.apply(resume)
	if err := s.resumes.Update(ctx, resume); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, models.NewJobEvent(models.EventResumeUpdated, resume, resume.ID))
	return resume, nil
}

func (s *ResumeService) DeleteResume(ctx context.Context, principal *auth.Principal, id uint) error {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(principal, resume); err != nil {
		return err
	}
	if err := s.resumes.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Publish(ctx, models.NewJobEvent(models.EventResumeDeleted, resume, resume.ID))
	return nil
}
