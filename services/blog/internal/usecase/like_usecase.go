package usecase

import (
	"context"
	"fmt"

	"blogify/pkg/logger"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/repo/persistent"
)

// Likeable is the capability set a like target kind must provide.
type Likeable interface {
	Exists(ctx context.Context, id uint) (bool, error)
	CountLikes(ctx context.Context, id uint) (int64, error)
}

type LikeInput struct {
	BlogID *uint `json:"blog_id" form:"blog_id"`
	UserID *uint `json:"user_id" form:"user_id"`
}

type LikeUseCase interface {
	Toggle(ctx context.Context, caller uint, input LikeInput) (*entity.LikeResult, error)
}

type likeUseCase struct {
	likeRepo  persistent.LikeRepository
	likeables map[entity.LikeableKind]Likeable
	events    EventPublisher
	policy    Policy
	logger    *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	likeables map[entity.LikeableKind]Likeable,
	events EventPublisher,
	policy Policy,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:  likeRepo,
		likeables: likeables,
		events:    events,
		policy:    policy,
		logger:    logger,
	}
}

// Toggle likes the blog for the actor, or unlikes it when already liked.
// The actor defaults to the caller when no user_id is supplied.
func (uc *likeUseCase) Toggle(ctx context.Context, caller uint, input LikeInput) (*entity.LikeResult, error) {
	if input.BlogID == nil {
		return nil, ErrBlogNotFound
	}
	target := entity.LikeTarget{Kind: entity.KindBlog, ID: *input.BlogID}

	likeable, ok := uc.likeables[target.Kind]
	if !ok {
		return nil, ErrBlogNotFound
	}
	exists, err := likeable.Exists(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog: %w", err)
	}
	if !exists {
		return nil, ErrBlogNotFound
	}

	actor := caller
	if input.UserID != nil {
		if uc.policy.EnforceOwnership && *input.UserID != caller {
			return nil, ErrForbidden
		}
		actor = *input.UserID
	}

	liked, err := uc.likeRepo.Toggle(ctx, actor, target)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	count, err := likeable.CountLikes(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	eventType := EventBlogUnliked
	if liked {
		eventType = EventBlogLiked
	}
	publishEvent(ctx, uc.events, uc.logger, BlogEvent{Type: eventType, BlogID: target.ID, UserID: actor, LikesCount: &count})

	return &entity.LikeResult{Liked: liked, LikesCount: count}, nil
}

type blogLikeable struct {
	blogRepo persistent.BlogRepository
	likeRepo persistent.LikeRepository
}

// NewBlogLikeable exposes blogs as like targets.
func NewBlogLikeable(blogRepo persistent.BlogRepository, likeRepo persistent.LikeRepository) Likeable {
	return &blogLikeable{blogRepo: blogRepo, likeRepo: likeRepo}
}

func (b *blogLikeable) Exists(ctx context.Context, id uint) (bool, error) {
	return b.blogRepo.Exists(ctx, id)
}

func (b *blogLikeable) CountLikes(ctx context.Context, id uint) (int64, error) {
	return b.likeRepo.Count(ctx, entity.LikeTarget{Kind: entity.KindBlog, ID: id})
}
