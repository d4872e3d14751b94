package models

import "time"

// Post is a job posting owned by the user who created it.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:300;not null;index" json:"title"`
	CompanyName string    `gorm:"size:200;index" json:"company_name"`
	Content     string    `gorm:"type:text" json:"content"`
	Hashtags    string    `gorm:"size:500" json:"hashtags"`
	JobType     string    `gorm:"size:100;index" json:"job_type"`
	Career      string    `gorm:"size:100" json:"career"`
	Deadline    string    `gorm:"size:50" json:"deadline"`
	Salary      string    `gorm:"size:100" json:"salary"`
	JobLocation string    `gorm:"column:joblocation;size:200;index" json:"joblocation"`
	Education   string    `gorm:"size:100" json:"education"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OwnerID implements Owned.
func (p *Post) OwnerID() uint { return p.AuthorID }

// Kind implements Owned.
func (*Post) Kind() string { return "Post" }
