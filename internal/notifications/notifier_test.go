package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/RefuJobs/RefuJobs-server/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNotifier_NilClientIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	assert.NoError(t, n.PublishEvent(context.Background(), models.JobEvent{Type: models.EventPostCreated}))
	n.Publish(context.Background(), models.JobEvent{Type: models.EventPostCreated})
	assert.NoError(t, n.Subscribe(context.Background(), func(string, models.JobEvent) {}))
}

func TestChannelsFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		event    models.JobEvent
		expected []string
	}{
		{models.JobEvent{Type: models.EventPostCreated, AuthorID: 1}, []string{EventsChannel, PostEventsChannel}},
		{models.JobEvent{Type: models.EventResumeDeleted, AuthorID: 9}, []string{EventsChannel, "jobboard:user:9:resumes"}},
		{models.JobEvent{Type: "other"}, []string{EventsChannel}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ChannelsFor(tt.event))
	}
}

func TestNotifier_PublishAndSubscribe(t *testing.T) {
	_, rdb := newTestRedis(t)
	n := NewNotifier(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan models.JobEvent, 4)
	require.NoError(t, n.Subscribe(ctx, func(_ string, e models.JobEvent) {
		received <- e
	}, UserResumesChannel(3)))

	n.Publish(ctx, models.JobEvent{Type: models.EventPostCreated, ResourceID: 1, AuthorID: 3})
	n.Publish(ctx, models.JobEvent{Type: models.EventResumeCreated, ResourceID: 8, AuthorID: 3})

	select {
	case e := <-received:
		assert.Equal(t, models.EventResumeCreated, e.Type)
		assert.Equal(t, uint(8), e.ResourceID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for resume event")
	}

	select {
	case e := <-received:
		t.Fatalf("unexpected event on private channel: %+v", e)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifier_PublishFailureIsSwallowed(t *testing.T) {
	mr, rdb := newTestRedis(t)
	n := NewNotifier(rdb)
	mr.Close()

	assert.Error(t, n.PublishEvent(context.Background(), models.JobEvent{Type: models.EventPostDeleted}))
	assert.NotPanics(t, func() {
		n.Publish(context.Background(), models.JobEvent{Type: models.EventPostDeleted})
	})
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), mr.Addr())
	require.NoError(t, err)
	_ = client.Close()

	client, err = Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = Connect(context.Background(), "redis://%%bad")
	assert.Error(t, err)
}
