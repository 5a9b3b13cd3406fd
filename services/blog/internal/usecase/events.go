package usecase

import (
	"context"
	"time"

	"blogify/pkg/logger"
)

const (
	EventBlogCreated = "blog.created"
	EventBlogUpdated = "blog.updated"
	EventBlogDeleted = "blog.deleted"
	EventBlogLiked   = "blog.liked"
	EventBlogUnliked = "blog.unliked"
)

// EventPublisher delivers domain events, e.g. to RabbitMQ.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type BlogEvent struct {
	Type       string    `json:"type"`
	BlogID     uint      `json:"blog_id"`
	UserID     uint      `json:"user_id"`
	LikesCount *int64    `json:"likes_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent is best effort: a failed publish never fails the request.
func publishEvent(ctx context.Context, events EventPublisher, log *logger.Logger, event BlogEvent) {
	if events == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := events.Publish(ctx, event.Type, event); err != nil {
		log.Warn("Failed to publish %s event for blog %d: %v", event.Type, event.BlogID, err)
	}
}
