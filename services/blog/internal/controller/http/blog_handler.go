package http

import (
	"net/http"
	"strconv"

	"blogify/pkg/logger"
	"blogify/pkg/middleware"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

type blogForm struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// ListBlogs godoc
// @Summary      List my blogs
// @Description  Paginated list of the caller's blogs, 10 per page
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Case-insensitive match on title or description"
// @Param        filter query string false "Ordering" Enums(latest, most_liked)
// @Param        page   query int    false "Page number"
// @Success      200  {object}  SuccessResponse{data=BlogPageResource}
// @Failure      401  {object}  ErrorResponse
// @Router       /blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	page, _ := strconv.Atoi(c.Query("page"))

	result, err := h.blogUseCase.List(c.Request.Context(), identity.UserID, usecase.ListBlogsInput{
		Search: c.Query("search"),
		Filter: c.Query("filter"),
		Page:   page,
	})
	if err != nil {
		h.logger.Error("Failed to list blogs: %v", err)
		serverError(c)
		return
	}

	success(c, http.StatusOK, "Blogs listed successfully", newBlogPageResource(result, requestPath(c), h.blogUseCase.ImageURL))
}

// CreateBlog godoc
// @Summary      Create a blog
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title       formData string true "Blog title"
// @Param        description formData string true "Blog description"
// @Param        image       formData file   true "Cover image (jpeg/jpg/png, max 2MB)"
// @Success      201  {object}  SuccessResponse{data=BlogResource}
// @Failure      401  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	blog, err := h.blogUseCase.Create(c.Request.Context(), identity.UserID, bindBlogInput(c))
	if err != nil {
		if writeKnownError(c, err) {
			return
		}
		h.logger.Error("Failed to create blog: %v", err)
		serverError(c)
		return
	}

	success(c, http.StatusCreated, "Blog added successfully", h.resource(blog))
}

// UpdateBlog godoc
// @Summary      Update a blog
// @Description  Replace title, description and image of a blog
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id          path     int    true "Blog ID"
// @Param        title       formData string true "Blog title"
// @Param        description formData string true "Blog description"
// @Param        image       formData file   true "Cover image (jpeg/jpg/png, max 2MB)"
// @Success      200  {object}  SuccessResponse{data=BlogResource}
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /blogs/{id}/update [post]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	blogID, ok := blogIDParam(c)
	if !ok {
		fail(c, http.StatusNotFound, "Blog not found.", nil)
		return
	}

	blog, err := h.blogUseCase.Update(c.Request.Context(), identity.UserID, blogID, bindBlogInput(c))
	if err != nil {
		if writeKnownError(c, err) {
			return
		}
		h.logger.Error("Failed to update blog %d: %v", blogID, err)
		fail(c, http.StatusInternalServerError, "Something went wrong: "+err.Error(), nil)
		return
	}

	success(c, http.StatusOK, "Blog updated successfully", h.resource(blog))
}

// DeleteBlog godoc
// @Summary      Delete a blog
// @Description  Remove a blog, its likes and its stored image
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blog ID"
// @Success      200  {object}  SuccessResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	blogID, ok := blogIDParam(c)
	if !ok {
		fail(c, http.StatusNotFound, "Blog not found.", nil)
		return
	}

	if err := h.blogUseCase.Delete(c.Request.Context(), identity.UserID, blogID); err != nil {
		if writeKnownError(c, err) {
			return
		}
		h.logger.Error("Failed to delete blog %d: %v", blogID, err)
		serverError(c)
		return
	}

	success(c, http.StatusOK, "Blog deleted successfully.", []any{})
}

func (h *BlogHandler) resource(blog *entity.Blog) BlogResource {
	return newBlogResource(blog, h.blogUseCase.ImageURL(blog))
}

// bindBlogInput reads title and description from the form and the optional
// "image" upload. Missing fields are left empty for validation to report.
func bindBlogInput(c *gin.Context) usecase.BlogInput {
	var form blogForm
	_ = c.ShouldBind(&form)

	input := usecase.BlogInput{
		Title:       form.Title,
		Description: form.Description,
	}
	if image, err := c.FormFile("image"); err == nil {
		input.Image = image
	}
	return input
}

func blogIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
