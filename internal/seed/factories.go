// Package seed provides helpers to create demo data for the job board
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword is the login password of every generated user.
const DefaultPassword = "password123"

var (
	jobTypes   = []string{"Full-time", "Part-time", "Contract", "Internship", "Temporary"}
	careers    = []string{"Entry level", "1-3 years", "3-5 years", "5+ years", "Any"}
	educations = []string{"High school", "Associate", "Bachelor", "Master", "Doctorate", "Not required"}
	hashtags   = []string{"#remote", "#visa", "#korean", "#english", "#startup", "#manufacturing", "#it", "#service", "#logistics"}
)

// Factory builds job board entities and persists them to the database.
// It is a thin helper used by Seed and tests.
type Factory struct {
	db     *gorm.DB
	hasher auth.Hasher

	passwordHash string
}

// NewFactory creates a Factory bound to db. Generated users share one
// password hash so seeding does not pay bcrypt per user.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	if opts.RandomSeed != 0 {
		gofakeit.Seed(opts.RandomSeed)
	} else {
		gofakeit.Seed(time.Now().UnixNano())
	}

	hasher := auth.NewBcryptHasher(opts.BcryptCost)
	password := opts.Password
	if password == "" {
		password = DefaultPassword
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return &Factory{db: db, hasher: hasher, passwordHash: hash}, nil
}

// BuildUser constructs an unsaved user with generated profile data.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	user := &models.User{
		Email:    strings.ToLower(fmt.Sprintf("%s.%d@example.com", gofakeit.Username(), gofakeit.Number(1000, 9999))),
		Password: f.passwordHash,
		Name:     gofakeit.Name(),
		Gender:   gofakeit.Gender(),
		Country:  gofakeit.Country(),
		Birthdate: models.Date{Time: truncateDay(gofakeit.DateRange(
			time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC),
		))},
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser builds and persists a user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs an unsaved job posting authored by user.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	company := gofakeit.Company()
	post := &models.Post{
		Title:       fmt.Sprintf("%s %s %s", gofakeit.JobLevel(), gofakeit.JobDescriptor(), gofakeit.JobTitle()),
		CompanyName: company,
		Content:     gofakeit.Paragraph(2, 4, 12, "\n\n"),
		Hashtags:    strings.Join([]string{gofakeit.RandomString(hashtags), gofakeit.RandomString(hashtags)}, " "),
		JobType:     gofakeit.RandomString(jobTypes),
		Career:      gofakeit.RandomString(careers),
		Deadline:    time.Now().AddDate(0, 0, gofakeit.Number(7, 60)).Format(models.DateLayout),
		Salary:      fmt.Sprintf("%d,000 KRW / month", gofakeit.Number(2000, 6000)),
		JobLocation: gofakeit.City(),
		Education:   gofakeit.RandomString(educations),
		AuthorID:    user.ID,
	}
	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost builds and persists a job posting.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)
	if err := f.db.Omit("Author").Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post, batchSize int) error {
	if len(posts) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return f.db.Omit("Author").CreateInBatches(posts, batchSize).Error
}

// BuildResume constructs an unsaved resume authored by user. Contact data
// is copied from the user where it exists.
func (f *Factory) BuildResume(user *models.User, overrides ...func(*models.Resume)) *models.Resume {
	resume := &models.Resume{
		Title:       fmt.Sprintf("%s seeking %s role", gofakeit.JobDescriptor(), gofakeit.JobTitle()),
		Name:        user.Name,
		Gender:      user.Gender,
		Email:       user.Email,
		PhoneNumber: gofakeit.Phone(),
		Education:   gofakeit.RandomString(educations),
		Location:    gofakeit.City(),
		Introduce:   gofakeit.Paragraph(1, 3, 14, "\n"),
		AuthorID:    user.ID,
	}
	for _, override := range overrides {
		override(resume)
	}
	return resume
}

// CreateResume builds and persists a resume.
func (f *Factory) CreateResume(user *models.User, overrides ...func(*models.Resume)) (*models.Resume, error) {
	resume := f.BuildResume(user, overrides...)
	if err := f.db.Omit("Author").Create(resume).Error; err != nil {
		return nil, err
	}
	return resume, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
