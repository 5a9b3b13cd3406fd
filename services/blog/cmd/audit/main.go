package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blogify/pkg/config"
	"blogify/pkg/logger"
	"blogify/pkg/queue"
	"blogify/services/blog/internal/usecase"
)

// audit drains the blog_events_audit queue into the structured log.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.NewForEnvironment(cfg.IsDevelopment())

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = queueClient.ConsumeEvents(ctx, func(routingKey string, body []byte) error {
		var event usecase.BlogEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("failed to decode %s event: %w", routingKey, err)
		}

		attrs := []any{
			"type", routingKey,
			"blog_id", event.BlogID,
			"user_id", event.UserID,
			"occurred_at", event.OccurredAt,
		}
		if event.LikesCount != nil {
			attrs = append(attrs, "likes_count", *event.LikesCount)
		}
		log.Slog().Info("blog event", attrs...)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Audit consumer stopped: %v", err)
		os.Exit(1)
	}

	log.Info("Audit consumer exited")
}
