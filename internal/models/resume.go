package models

import "time"

// Resume is a job seeker's resume. It holds personal contact data and is
// visible only to its author.
type Resume struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:300;not null" json:"title"`
	Name        string    `gorm:"size:100" json:"name"`
	Gender      string    `gorm:"size:32" json:"gender"`
	Email       string    `gorm:"size:254" json:"email"`
	PhoneNumber string    `gorm:"column:phonenumber;size:32" json:"phonenumber"`
	Education   string    `gorm:"size:100" json:"education"`
	Location    string    `gorm:"size:200" json:"location"`
	Introduce   string    `gorm:"type:text" json:"introduce"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerID implements Owned.
func (r *Resume) OwnerID() uint { return r.AuthorID }

// Kind implements Owned.
func (*Resume) Kind() string { return "Resume" }
