package service

import (
	"context"

	"github.com/RefuJobs/RefuJobs-server/internal/models"
)

// EventPublisher announces job events. Implementations are best effort and
// never fail the calling operation.
type EventPublisher interface {
	Publish(ctx context.Context, event models.JobEvent)
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, models.JobEvent) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
