// Package models contains data structures for the application's domain models.
package models

import "time"

// User is a registered account. Email is the login key and never changes
// after registration.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:254;not null;uniqueIndex:idx_users_email" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	Gender    string    `gorm:"size:32" json:"gender"`
	Country   string    `gorm:"size:100" json:"country"`
	Birthdate Date      `json:"birthdate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the public view of a user returned by /users/me.
type Profile struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Country   string `json:"country"`
	Birthdate Date   `json:"birthdate"`
}

// Profile returns the user's public profile.
func (u *User) Profile() Profile {
	return Profile{
		Email:     u.Email,
		Name:      u.Name,
		Gender:    u.Gender,
		Country:   u.Country,
		Birthdate: u.Birthdate,
	}
}
