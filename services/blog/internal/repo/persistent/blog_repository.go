package persistent

import (
	"context"
	"strings"

	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	likesCountColumn = "(SELECT COUNT(*) FROM likes WHERE likes.likeable_id = blogs.id AND likes.likeable_type = ?) AS likes_count"
	likedCountColumn = "(SELECT COUNT(*) FROM likes WHERE likes.likeable_id = blogs.id AND likes.likeable_type = ? AND likes.user_id = ?) AS liked_count"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	GetByID(ctx context.Context, id, viewerID uint) (*entity.Blog, error)
	List(ctx context.Context, query entity.BlogQuery) ([]*entity.Blog, int64, error)
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(blogModel).Error; err != nil {
		return translateError(err)
	}
	*blog = *ToBlogEntity(blogModel)
	return nil
}

// GetByID loads a blog with its author and like stats relative to viewerID.
func (r *blogRepository) GetByID(ctx context.Context, id, viewerID uint) (*entity.Blog, error) {
	var blogModel model.BlogModel
	err := withLikeStats(r.db.WithContext(ctx).Model(&model.BlogModel{}), viewerID).
		Preload("User").
		Where("blogs.id = ?", id).
		First(&blogModel).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ToBlogEntity(&blogModel), nil
}

func (r *blogRepository) List(ctx context.Context, query entity.BlogQuery) ([]*entity.Blog, int64, error) {
	scoped := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&model.BlogModel{}).Where("blogs.user_id = ?", query.OwnerID)
		if query.Search != "" {
			term := "%" + strings.ToLower(query.Search) + "%"
			db = db.Where("(LOWER(blogs.title) LIKE ? OR LOWER(blogs.description) LIKE ?)", term, term)
		}
		return db
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db := withLikeStats(scoped(), query.ViewerID).Preload("User")
	switch query.Filter {
	case entity.FilterLatest:
		db = db.Order("blogs.created_at DESC").Order("blogs.id DESC")
	case entity.FilterMostLiked:
		db = db.Order("likes_count DESC").Order("blogs.id ASC")
	default:
		db = db.Order("blogs.id ASC")
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit).Offset(query.Offset)
	}

	var blogModels []model.BlogModel
	if err := db.Find(&blogModels).Error; err != nil {
		return nil, 0, err
	}

	blogs := make([]*entity.Blog, len(blogModels))
	for i := range blogModels {
		blogs[i] = ToBlogEntity(&blogModels[i])
	}
	return blogs, total, nil
}

func (r *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	result := r.db.WithContext(ctx).
		Model(&model.BlogModel{ID: blog.ID}).
		Select("title", "description", "image").
		Updates(blogModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the blog together with every like that targets it.
func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("likeable_id = ? AND likeable_type = ?", id, string(entity.KindBlog)).
			Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.BlogModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *blogRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.BlogModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func withLikeStats(db *gorm.DB, viewerID uint) *gorm.DB {
	kind := string(entity.KindBlog)
	return db.Select("blogs.*, "+likesCountColumn+", "+likedCountColumn, kind, kind, viewerID)
}
