// Package notifications publishes job board events over Redis pub/sub.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Channel names.
const (
	EventsChannel     = "jobboard:events"
	PostEventsChannel = "jobboard:events:posts"
)

// UserResumesChannel is the private channel carrying one user's resume events.
func UserResumesChannel(userID uint) string {
	return fmt.Sprintf("jobboard:user:%d:resumes", userID)
}

// ChannelsFor lists every channel an event is published to.
func ChannelsFor(event models.JobEvent) []string {
	channels := []string{EventsChannel}
	switch {
	case strings.HasPrefix(event.Type, "post."):
		channels = append(channels, PostEventsChannel)
	case strings.HasPrefix(event.Type, "resume."):
		channels = append(channels, UserResumesChannel(event.AuthorID))
	}
	return channels
}

// Notifier publishes job events into Redis channels. A nil client turns
// every call into a no-op.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishEvent sends event to all of its channels and returns the first
// failure.
func (n *Notifier) PublishEvent(ctx context.Context, event models.JobEvent) error {
	if n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pipe := n.rdb.Pipeline()
	for _, channel := range ChannelsFor(event) {
		pipe.Publish(ctx, channel, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Publish is the best-effort form of PublishEvent. Failures are logged and
// counted, never returned.
func (n *Notifier) Publish(ctx context.Context, event models.JobEvent) {
	if n.rdb == nil {
		return
	}
	if err := n.PublishEvent(ctx, event); err != nil {
		observability.JobEventsPublished.WithLabelValues(event.Type, observability.OutcomeFailure).Inc()
		middleware.Logger.WarnContext(ctx, "Job event not published",
			slog.String("type", event.Type),
			slog.Uint64("resource_id", uint64(event.ResourceID)),
			slog.String("error", err.Error()),
		)
		return
	}
	observability.JobEventsPublished.WithLabelValues(event.Type, observability.OutcomeSuccess).Inc()
}

// Subscribe listens on channels until ctx is done and hands each decoded
// event to onEvent. Undecodable payloads are logged and skipped.
func (n *Notifier) Subscribe(
	ctx context.Context, onEvent func(channel string, event models.JobEvent), channels ...string,
) error {
	if n.rdb == nil {
		return nil
	}
	if len(channels) == 0 {
		channels = []string{EventsChannel}
	}
	sub := n.rdb.Subscribe(ctx, channels...)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe: %w", err)
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event models.JobEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					middleware.Logger.Warn("Dropping malformed job event",
						slog.String("channel", msg.Channel), slog.String("error", err.Error()))
					continue
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("PANIC in job event subscriber",
								slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
						}
					}()
					onEvent(msg.Channel, event)
				}()
			}
		}
	}()

	return nil
}
