package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"blogify/pkg/logger"
	"blogify/pkg/storage"
	"blogify/pkg/validation"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/repo/persistent"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BlogInput struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description string                `json:"description" validate:"required"`
	Image       *multipart.FileHeader `json:"image" validate:"-"`
}

type ListBlogsInput struct {
	Search string
	Filter string
	Page   int
}

var blogImageRule = validation.ImageRule{
	Mimes: []string{"jpeg", "png", "jpg"},
	MaxKB: 2048,
}

var updateBlogMessages = validation.Messages{
	"title.required":       "Blog title is required.",
	"description.required": "Description is required.",
	"image.image":          "Image must be an image file.",
	"image.mimes":          "Image must be JPEG, PNG or JPG.",
	"image.max":            "Image size must not exceed 2MB.",
	"image.uploaded":       "The image failed to upload.",
}

var createBlogMessages = func() validation.Messages {
	messages := validation.Messages{"image.required": "Image is required."}
	for key, msg := range updateBlogMessages {
		messages[key] = msg
	}
	return messages
}()

type BlogUseCase interface {
	List(ctx context.Context, caller uint, input ListBlogsInput) (*entity.BlogPage, error)
	Create(ctx context.Context, caller uint, input BlogInput) (*entity.Blog, error)
	Update(ctx context.Context, caller uint, blogID uint, input BlogInput) (*entity.Blog, error)
	Delete(ctx context.Context, caller uint, blogID uint) error
	ImageURL(blog *entity.Blog) string
}

type blogUseCase struct {
	blogRepo  persistent.BlogRepository
	blobs     storage.BlobStore
	events    EventPublisher
	validator *validation.Validator
	policy    Policy
	logger    *logger.Logger
}

func NewBlogUseCase(
	blogRepo persistent.BlogRepository,
	blobs storage.BlobStore,
	events EventPublisher,
	validator *validation.Validator,
	policy Policy,
	logger *logger.Logger,
) BlogUseCase {
	validator.RegisterStructValidation(validateBlogImage, BlogInput{})

	return &blogUseCase{
		blogRepo:  blogRepo,
		blobs:     blobs,
		events:    events,
		validator: validator,
		policy:    policy,
		logger:    logger,
	}
}

func validateBlogImage(sl validator.StructLevel) {
	input := sl.Current().Interface().(BlogInput)
	_, tag, err := validation.CheckImage(input.Image, blogImageRule)
	if err != nil {
		tag = "uploaded"
	}
	if tag != "" {
		sl.ReportError(input.Image, "image", "Image", tag, "")
	}
}

func (uc *blogUseCase) List(ctx context.Context, caller uint, input ListBlogsInput) (*entity.BlogPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	query := entity.BlogQuery{
		OwnerID:  caller,
		ViewerID: caller,
		Search:   input.Search,
		Limit:    entity.BlogsPerPage,
		Offset:   (page - 1) * entity.BlogsPerPage,
	}
	switch entity.BlogFilter(input.Filter) {
	case entity.FilterLatest, entity.FilterMostLiked:
		query.Filter = entity.BlogFilter(input.Filter)
	}

	blogs, total, err := uc.blogRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	return &entity.BlogPage{
		Items:   blogs,
		Total:   total,
		Page:    page,
		PerPage: entity.BlogsPerPage,
	}, nil
}

func (uc *blogUseCase) Create(ctx context.Context, caller uint, input BlogInput) (*entity.Blog, error) {
	if err := uc.validator.Validate(&input, createBlogMessages); err != nil {
		return nil, err
	}

	imageName, err := uc.storeImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		UserID:      caller,
		Title:       input.Title,
		Description: input.Description,
		Image:       imageName,
	}
	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	created, err := uc.blogRepo.GetByID(ctx, blog.ID, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to reload blog: %w", err)
	}

	publishEvent(ctx, uc.events, uc.logger, BlogEvent{Type: EventBlogCreated, BlogID: created.ID, UserID: caller})
	return created, nil
}

// Update replaces title, description and image. The new image is stored
// before the row is saved and the previous file is removed only afterwards.
func (uc *blogUseCase) Update(ctx context.Context, caller uint, blogID uint, input BlogInput) (*entity.Blog, error) {
	blog, err := uc.findBlog(ctx, caller, blogID)
	if err != nil {
		return nil, err
	}

	if err := uc.validator.Validate(&input, updateBlogMessages); err != nil {
		return nil, err
	}

	imageName, err := uc.storeImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	previousKey := blog.ImageKey()
	blog.Title = input.Title
	blog.Description = input.Description
	blog.Image = imageName

	if err := uc.blogRepo.Update(ctx, blog); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	if previousKey != "" && previousKey != blog.ImageKey() {
		uc.removeBlob(ctx, previousKey)
	}

	updated, err := uc.blogRepo.GetByID(ctx, blog.ID, caller)
	if err != nil {
		return nil, fmt.Errorf("failed to reload blog: %w", err)
	}

	publishEvent(ctx, uc.events, uc.logger, BlogEvent{Type: EventBlogUpdated, BlogID: updated.ID, UserID: caller})
	return updated, nil
}

// Delete removes the stored image, then the blog row and its likes.
func (uc *blogUseCase) Delete(ctx context.Context, caller uint, blogID uint) error {
	blog, err := uc.findBlog(ctx, caller, blogID)
	if err != nil {
		return err
	}

	if key := blog.ImageKey(); key != "" {
		exists, err := uc.blobs.Exists(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check blog image: %w", err)
		}
		if exists {
			if err := uc.blobs.Delete(ctx, key); err != nil {
				return fmt.Errorf("failed to delete blog image: %w", err)
			}
		}
	}

	if err := uc.blogRepo.Delete(ctx, blog.ID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}

	publishEvent(ctx, uc.events, uc.logger, BlogEvent{Type: EventBlogDeleted, BlogID: blog.ID, UserID: caller})
	return nil
}

func (uc *blogUseCase) ImageURL(blog *entity.Blog) string {
	if blog.ImageKey() == "" {
		return ""
	}
	return uc.blobs.URL(blog.ImageKey())
}

func (uc *blogUseCase) findBlog(ctx context.Context, caller, blogID uint) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, blogID, caller)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load blog: %w", err)
	}
	if uc.policy.EnforceOwnership && blog.UserID != caller {
		return nil, ErrForbidden
	}
	return blog, nil
}

// storeImage writes the upload as blogs/blog_<uuidv7>.<ext> and returns the file name.
func (uc *blogUseCase) storeImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	image, tag, err := validation.CheckImage(fh, blogImageRule)
	if err != nil {
		return "", err
	}
	if tag != "" {
		return "", validation.Errors{"image": {createBlogMessages["image."+tag]}}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate image name: %w", err)
	}
	name := fmt.Sprintf("blog_%s.%s", id.String(), image.Extension)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	if err := uc.blobs.Put(ctx, "blogs/"+name, src, image.ContentType); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return name, nil
}

func (uc *blogUseCase) removeBlob(ctx context.Context, key string) {
	exists, err := uc.blobs.Exists(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to check previous image %s: %v", key, err)
		return
	}
	if !exists {
		return
	}
	if err := uc.blobs.Delete(ctx, key); err != nil {
		uc.logger.Warn("Failed to delete previous image %s: %v", key, err)
	}
}
