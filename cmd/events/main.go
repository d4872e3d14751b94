// Command events tails job board events from Redis and prints them as JSON
// lines.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/RefuJobs/RefuJobs-server/internal/config"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/models"
	"github.com/RefuJobs/RefuJobs-server/internal/notifications"
)

type eventLine struct {
	Channel string          `json:"channel"`
	Event   models.JobEvent `json:"event"`
}

func main() {
	posts := flag.Bool("posts", false, "Only follow job posting events")
	userID := flag.Uint("user", 0, "Follow resume events of this user ID instead")
	limit := flag.Int("n", 0, "Exit after this many events (0 = until interrupted)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	middleware.SetupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := notifications.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer func() { _ = rdb.Close() }()

	channels := channelsFor(*posts, *userID)
	log.Printf("Following %v", channels)
	if err := run(ctx, os.Stdout, notifications.NewNotifier(rdb), channels, *limit); err != nil {
		log.Fatal(err)
	}
}

func channelsFor(posts bool, userID uint) []string {
	switch {
	case userID > 0:
		return []string{notifications.UserResumesChannel(userID)}
	case posts:
		return []string{notifications.PostEventsChannel}
	default:
		return []string{notifications.EventsChannel}
	}
}

// run prints events received on channels until ctx is done or limit events
// were written. A limit of zero means no limit.
func run(ctx context.Context, out io.Writer, n *notifications.Notifier, channels []string, limit int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan eventLine, 16)
	err := n.Subscribe(ctx, func(channel string, event models.JobEvent) {
		select {
		case lines <- eventLine{Channel: channel, Event: event}:
		case <-ctx.Done():
		}
	}, channels...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	written := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case line := <-lines:
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("write event: %w", err)
			}
			written++
			if limit > 0 && written >= limit {
				return nil
			}
		}
	}
}
