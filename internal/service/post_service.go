package service

import (
	"context"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/repository"
	"github.com/RefuJobs/RefuJobs-server/internal/validation"
)

// PostInput carries the editable fields of a job posting. PUT replaces all
// of them.
type PostInput struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Content     string `json:"content"`
	Hashtags    string `json:"hashtags"`
	JobType     string `json:"job_type"`
	Career      string `json:"career"`
	Deadline    string `json:"deadline"`
	Salary      string `json:"salary"`
	JobLocation string `json:"joblocation"`
	Education   string `json:"education"`
}

func (in PostInput) validate() error {
	err := validation.ValidateFields(
		validation.Field{Name: "title", Value: in.Title, Max: 300, Required: true},
		validation.Field{Name: "company_name", Value: in.CompanyName, Max: 200},
		validation.Field{Name: "content", Value: in.Content, Max: 50000},
		validation.Field{Name: "hashtags", Value: in.Hashtags, Max: 500},
		validation.Field{Name: "job_type", Value: in.JobType, Max: 100},
		validation.Field{Name: "career", Value: in.Career, Max: 100},
		validation.Field{Name: "deadline", Value: in.Deadline, Max: 50},
		validation.Field{Name: "salary", Value: in.Salary, Max: 100},
		validation.Field{Name: "joblocation", Value: in.JobLocation, Max: 200},
		validation.Field{Name: "education", Value: in.Education, Max: 100},
	)
	if err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}

func (in PostInput) apply(p *models.Post) {
	p.Title = in.Title
	p.CompanyName = in.CompanyName
	p.Content = in.Content
	p.Hashtags = in.Hashtags
	p.JobType = in.JobType
	p.Career = in.Career
	p.Deadline = in.Deadline
	p.Salary = in.Salary
	p.JobLocation = in.JobLocation
	p.Education = in.Education
}

// PostService manages job postings. Reads are public; mutations require
// the author.
type PostService struct {
	posts  repository.PostRepository
	events EventPublisher
}

// NewPostService returns a PostService. A nil publisher disables events.
func NewPostService(posts repository.PostRepository, events EventPublisher) *PostService {
	return &PostService{posts: posts, events: publisherOrNoop(events)}
}

// CreatePost stores a post authored by principal.
func (s *PostService) CreatePost(ctx context.Context, principal *auth.Principal, in PostInput) (*models.Post, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	post := &models.Post{AuthorID: principal.ID}
	in.apply(post)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, models.NewJobEvent(models.EventPostCreated, post, post.ID))
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, offset, limit int) ([]models.Post, error) {
	return s.posts.List(ctx, offset, limit)
}

func (s *PostService) ListPostsByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID, offset, limit)
}

// UpdatePost replaces the post's fields with the decoded input. NotFound
// wins over Forbidden, and both win over a bad payload.
func (s *PostService) UpdatePost(ctx context.Context, principal *auth.Principal, id uint, decode Decoder[PostInput]) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeMutation(principal, post); err != nil {
		return nil, err
	}
	var in PostInput
	if err := decode(&in); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	in.apply(post)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, models.NewJobEvent(models.EventPostUpdated, post, post.ID))
	return post, nil
}

// DeletePost removes the post. NotFound wins over Forbidden.
func (s *PostService) DeletePost(ctx context.Context, principal *auth.Principal, id uint) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeMutation(principal, post); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Publish(ctx, models.NewJobEvent(models.EventPostDeleted, post, post.ID))
	return nil
}
