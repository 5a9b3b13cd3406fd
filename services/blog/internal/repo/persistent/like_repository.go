package persistent

import (
	"context"

	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Toggle(ctx context.Context, userID uint, target entity.LikeTarget) (bool, error)
	Count(ctx context.Context, target entity.LikeTarget) (int64, error)
	IsLiked(ctx context.Context, userID uint, target entity.LikeTarget) (bool, error)
	ListByTarget(ctx context.Context, target entity.LikeTarget) ([]*entity.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle removes the user's like on target or creates it when absent, in
// one transaction. The unique index on (user_id, likeable_id, likeable_type)
// keeps concurrent toggles from inserting duplicates.
func (r *likeRepository) Toggle(ctx context.Context, userID uint, target entity.LikeTarget) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND likeable_id = ? AND likeable_type = ?", userID, target.ID, string(target.Kind)).
			Delete(&model.LikeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			liked = false
			return nil
		}

		likeModel := ToLikeModel(&entity.Like{UserID: userID, Target: target})
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(likeModel).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *likeRepository) Count(ctx context.Context, target entity.LikeTarget) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("likeable_id = ? AND likeable_type = ?", target.ID, string(target.Kind)).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) IsLiked(ctx context.Context, userID uint, target entity.LikeTarget) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).
		Where("user_id = ? AND likeable_id = ? AND likeable_type = ?", userID, target.ID, string(target.Kind)).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) ListByTarget(ctx context.Context, target entity.LikeTarget) ([]*entity.Like, error) {
	var likeModels []model.LikeModel
	err := r.db.WithContext(ctx).
		Where("likeable_id = ? AND likeable_type = ?", target.ID, string(target.Kind)).
		Order("id ASC").
		Find(&likeModels).Error
	if err != nil {
		return nil, err
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}
