package service

import (
	"context"
	"sync"

	"github.com/RefuJobs/RefuJobs-server/internal/models"
)

// userRepoStub is an in-memory repository.UserRepository.
type userRepoStub struct {
	mu        sync.Mutex
	byEmail   map[string]*models.User
	nextID    uint
	getErr    error
	createErr error
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{byEmail: make(map[string]*models.User), nextID: 1}
}

func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, u := range s.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.byEmail[user.Email]; ok {
		return models.NewConflictError("Email already registered")
	}
	user.ID = s.nextID
	s.nextID++
	cp := *user
	s.byEmail[user.Email] = &cp
	return nil
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	updateFn       func(context.Context, *models.Post) error
	deleteFn       func(context.Context, uint) error
	listFn         func(context.Context, int, int) ([]models.Post, error)
	listByAuthorFn func(context.Context, uint, int, int) ([]models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, offset, limit int) ([]models.Post, error) {
	return s.listFn(ctx, offset, limit)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, offset, limit)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, p *models.Post) error { p.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return nil, models.NewNotFoundError("Post", id) },
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		listFn:    func(_ context.Context, _, _ int) ([]models.Post, error) { return []models.Post{}, nil },
		listByAuthorFn: func(_ context.Context, _ uint, _, _ int) ([]models.Post, error) {
			return []models.Post{}, nil
		},
	}
}

// resumeRepoStub is a stub for repository.ResumeRepository.
type resumeRepoStub struct {
	createFn       func(context.Context, *models.Resume) error
	getByIDFn      func(context.Context, uint) (*models.Resume, error)
	updateFn       func(context.Context, *models.Resume) error
	deleteFn       func(context.Context, uint) error
	listByAuthorFn func(context.Context, uint, int, int) ([]models.Resume, error)
}

func (s *resumeRepoStub) Create(ctx context.Context, r *models.Resume) error {
	return s.createFn(ctx, r)
}
func (s *resumeRepoStub) GetByID(ctx context.Context, id uint) (*models.Resume, error) {
	return s.getByIDFn(ctx, id)
}
func (s *resumeRepoStub) Update(ctx context.Context, r *models.Resume) error {
	return s.updateFn(ctx, r)
}
func (s *resumeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *resumeRepoStub) List(ctx context.Context, offset, limit int) ([]models.Resume, error) {
	return s.listByAuthorFn(ctx, 0, offset, limit)
}
func (s *resumeRepoStub) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]models.Resume, error) {
	return s.listByAuthorFn(ctx, authorID, offset, limit)
}

func noopResumeRepo() *resumeRepoStub {
	return &resumeRepoStub{
		createFn:  func(_ context.Context, r *models.Resume) error { r.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Resume, error) { return nil, models.NewNotFoundError("Resume", id) },
		updateFn:  func(_ context.Context, _ *models.Resume) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		listByAuthorFn: func(_ context.Context, _ uint, _, _ int) ([]models.Resume, error) {
			return []models.Resume{}, nil
		},
	}
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.JobEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e models.JobEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// input returns a decoder that yields in.
func input[T any](in T) Decoder[T] {
	return func(dst *T) error {
		*dst = in
		return nil
	}
}
