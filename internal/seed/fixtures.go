package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixtures is a hand-written data set, usually loaded from YAML:
//
//	users:
//	  - email: recruiter@example.com
//	    password: secret
//	    posts:
//	      - title: Line cook
//	        company_name: Seoul Kitchen
type Fixtures struct {
	Users []UserFixture `yaml:"users"`
}

// UserFixture is a user together with the records they own.
type UserFixture struct {
	Email     string          `yaml:"email"`
	Password  string          `yaml:"password"`
	Name      string          `yaml:"name"`
	Gender    string          `yaml:"gender"`
	Country   string          `yaml:"country"`
	Birthdate string          `yaml:"birthdate"`
	Posts     []PostFixture   `yaml:"posts"`
	Resumes   []ResumeFixture `yaml:"resumes"`
}

// PostFixture mirrors the editable fields of a job posting.
type PostFixture struct {
	Title       string `yaml:"title"`
	CompanyName string `yaml:"company_name"`
	Content     string `yaml:"content"`
	Hashtags    string `yaml:"hashtags"`
	JobType     string `yaml:"job_type"`
	Career      string `yaml:"career"`
	Deadline    string `yaml:"deadline"`
	Salary      string `yaml:"salary"`
	JobLocation string `yaml:"joblocation"`
	Education   string `yaml:"education"`
}

// ResumeFixture mirrors the editable fields of a resume.
type ResumeFixture struct {
	Title       string `yaml:"title"`
	Name        string `yaml:"name"`
	Gender      string `yaml:"gender"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phonenumber"`
	Education   string `yaml:"education"`
	Location    string `yaml:"location"`
	Introduce   string `yaml:"introduce"`
}

// LoadFixtures decodes a YAML fixture document and checks it.
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := fx.validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// LoadFixturesFile reads fixtures from path.
func LoadFixturesFile(path string) (*Fixtures, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadFixtures(f)
}

func (fx *Fixtures) validate() error {
	seen := make(map[string]bool, len(fx.Users))
	for i, u := range fx.Users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" {
			return fmt.Errorf("users[%d]: email is required", i)
		}
		if u.Password == "" {
			return fmt.Errorf("users[%d] %s: password is required", i, email)
		}
		if seen[email] {
			return fmt.Errorf("users[%d]: duplicate email %s", i, email)
		}
		seen[email] = true
		if u.Birthdate != "" {
			if _, err := models.ParseDate(u.Birthdate); err != nil {
				return fmt.Errorf("users[%d] %s: %w", i, email, err)
			}
		}
		for j, p := range u.Posts {
			if strings.TrimSpace(p.Title) == "" {
				return fmt.Errorf("users[%d].posts[%d]: title is required", i, j)
			}
		}
		for j, r := range u.Resumes {
			if strings.TrimSpace(r.Title) == "" {
				return fmt.Errorf("users[%d].resumes[%d]: title is required", i, j)
			}
		}
	}
	return nil
}

// ApplyFixtures inserts the fixture users with their posts and resumes.
// Users whose email already exists are skipped along with their records,
// so applying the same file twice is harmless.
func ApplyFixtures(ctx context.Context, db *gorm.DB, hasher auth.Hasher, fx *Fixtures) (*Result, error) {
	result := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, uf := range fx.Users {
			email := strings.TrimSpace(uf.Email)

			var count int64
			if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				middleware.Logger.InfoContext(ctx, "Fixture user exists, skipping", slog.String("email", email))
				continue
			}

			hash, err := hasher.Hash(uf.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", email, err)
			}
			user := &models.User{
				Email:    email,
				Password: hash,
				Name:     uf.Name,
				Gender:   uf.Gender,
				Country:  uf.Country,
			}
			if uf.Birthdate != "" {
				user.Birthdate, _ = models.ParseDate(uf.Birthdate)
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create user %s: %w", email, err)
			}
			result.Users++

			for _, pf := range uf.Posts {
				post := pf.toModel(user.ID)
				if err := tx.Omit("Author").Create(post).Error; err != nil {
					return fmt.Errorf("create post %q: %w", pf.Title, err)
				}
				result.Posts++
			}
			for _, rf := range uf.Resumes {
				resume := rf.toModel(user.ID)
				if err := tx.Omit("Author").Create(resume).Error; err != nil {
					return fmt.Errorf("create resume %q: %w", rf.Title, err)
				}
				result.Resumes++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p PostFixture) toModel(authorID uint) *models.Post {
	return &models.Post{
		Title:       p.Title,
		CompanyName: p.CompanyName,
		Content:     p.Content,
		Hashtags:    p.Hashtags,
		JobType:     p.JobType,
		Career:      p.Career,
		Deadline:    p.Deadline,
		Salary:      p.Salary,
		JobLocation: p.JobLocation,
		Education:   p.Education,
		AuthorID:    authorID,
	}
}

func (r ResumeFixture) toModel(authorID uint) *models.Resume {
	return &models.Resume{
		Title:       r.Title,
		Name:        r.Name,
		Gender:      r.Gender,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Education:   r.Education,
		Location:    r.Location,
		Introduce:   r.Introduce,
		AuthorID:    authorID,
	}
}
