package persistent

import (
	"context"
	"time"

	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/model"

	"gorm.io/gorm"
)

type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error
	GetByID(ctx context.Context, id string) (*entity.Token, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	tokenModel := ToTokenModel(token)
	if err := r.db.WithContext(ctx).Create(tokenModel).Error; err != nil {
		return translateError(err)
	}
	*token = *ToTokenEntity(tokenModel)
	return nil
}

func (r *tokenRepository) GetByID(ctx context.Context, id string) (*entity.Token, error) {
	var tokenModel model.TokenModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tokenModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToTokenEntity(&tokenModel), nil
}

func (r *tokenRepository) Touch(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.TokenModel{}).Where("id = ?", id).UpdateColumn("last_used_at", at).Error
}

// Delete removes a single token; deleting an unknown id reports ErrNotFound.
func (r *tokenRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TokenModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
