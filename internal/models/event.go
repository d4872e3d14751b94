package models

import "time"

// Job event types published after successful mutations.
const (
	EventPostCreated   = "post.created"
	EventPostUpdated   = "post.updated"
	EventPostDeleted   = "post.deleted"
	EventResumeCreated = "resume.created"
	EventResumeUpdated = "resume.updated"
	EventResumeDeleted = "resume.deleted"
)

// JobEvent announces a change to a post or resume.
type JobEvent struct {
	Type       string    `json:"type"`
	ResourceID uint      `json:"resource_id"`
	AuthorID   uint      `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewJobEvent stamps an event with the current UTC time.
func NewJobEvent(eventType string, resource Owned, resourceID uint) JobEvent {
	return JobEvent{
		Type:       eventType,
		ResourceID: resourceID,
		AuthorID:   resource.OwnerID(),
		OccurredAt: time.Now().UTC(),
	}
}
