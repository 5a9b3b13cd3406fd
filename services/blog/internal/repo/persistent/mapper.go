package persistent

import (
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTokenEntity(m *model.TokenModel) *entity.Token {
	if m == nil {
		return nil
	}

	return &entity.Token{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		LastUsedAt: m.LastUsedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func ToTokenModel(e *entity.Token) *model.TokenModel {
	if e == nil {
		return nil
	}

	return &model.TokenModel{
		ID:         e.ID,
		UserID:     e.UserID,
		Name:       e.Name,
		LastUsedAt: e.LastUsedAt,
		CreatedAt:  e.CreatedAt,
	}
}

func ToBlogEntity(m *model.BlogModel) *entity.Blog {
	if m == nil {
		return nil
	}

	blog := &entity.Blog{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		LikesCount:  m.LikesCount,
		IsLiked:     m.LikedCount > 0,
	}
	if m.Image != nil {
		blog.Image = *m.Image
	}
	if m.User != nil {
		blog.Author = m.User.Name
	}
	return blog
}

func ToBlogModel(e *entity.Blog) *model.BlogModel {
	if e == nil {
		return nil
	}

	blog := &model.BlogModel{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Image != "" {
		image := e.Image
		blog.Image = &image
	}
	return blog
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:     m.ID,
		UserID: m.UserID,
		Target: entity.LikeTarget{
			Kind: entity.LikeableKind(m.LikeableType),
			ID:   m.LikeableID,
		},
		CreatedAt: m.CreatedAt,
	}
}

func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}

	return &model.LikeModel{
		ID:           e.ID,
		UserID:       e.UserID,
		LikeableID:   e.Target.ID,
		LikeableType: string(e.Target.Kind),
		CreatedAt:    e.CreatedAt,
	}
}
