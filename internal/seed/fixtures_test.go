package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/RefuJobs/RefuJobs-server/internal/auth"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadFixturesFile(t *testing.T) {
	fx, err := LoadFixturesFile("testdata/fixtures.yml")
	require.NoError(t, err)
	require.Len(t, fx.Users, 2)

	recruiter := fx.Users[0]
	assert.Equal(t, "recruiter@example.com", recruiter.Email)
	assert.Len(t, recruiter.Posts, 2)
	assert.Equal(t, "Seoul", recruiter.Posts[0].JobLocation)
	assert.Len(t, fx.Users[1].Resumes, 1)
	assert.Equal(t, "010-1234-5678", fx.Users[1].Resumes[0].PhoneNumber)
}

func TestLoadFixtures_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing email", "users:\n  - password: x\n"},
		{"missing password", "users:\n  - email: a@x.com\n"},
		{"duplicate email", "users:\n  - {email: a@x.com, password: x}\n  - {email: A@x.com, password: y}\n"},
		{"bad birthdate", "users:\n  - {email: a@x.com, password: x, birthdate: 04/05/1990}\n"},
		{"untitled post", "users:\n  - email: a@x.com\n    password: x\n    posts:\n      - company_name: Acme\n"},
		{"unknown field", "users:\n  - {email: a@x.com, password: x, username: a}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixtures(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFixtures_Empty(t *testing.T) {
	fx, err := LoadFixtures(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fx.Users)
}

func TestApplyFixtures_Idempotent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	fx, err := LoadFixturesFile("testdata/fixtures.yml")
	require.NoError(t, err)

	result, err := ApplyFixtures(context.Background(), db, hasher, fx)
	require.NoError(t, err)
	assert.Equal(t, &Result{Users: 2, Posts: 2, Resumes: 1}, result)

	var recruiter models.User
	require.NoError(t, db.Where("email = ?", "recruiter@example.com").First(&recruiter).Error)
	assert.True(t, hasher.Verify("recruiter-pass", recruiter.Password))
	assert.Equal(t, "1985-03-14", recruiter.Birthdate.String())

	var posts []models.Post
	require.NoError(t, db.Where("author_id = ?", recruiter.ID).Find(&posts).Error)
	assert.Len(t, posts, 2)

	result, err = ApplyFixtures(context.Background(), db, hasher, fx)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, result)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
