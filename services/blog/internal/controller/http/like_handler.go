package http

import (
	"net/http"

	"blogify/pkg/logger"
	"blogify/pkg/middleware"
	"blogify/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleLike godoc
// @Summary      Like or unlike a blog
// @Description  Toggles the like of user_id (defaults to the caller) on blog_id
// @Tags         likes
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.LikeInput true "Like target"
// @Success      200  {object}  LikeResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /like-blog [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var input usecase.LikeInput
	if err := c.ShouldBind(&input); err != nil {
		fail(c, http.StatusNotFound, "Blog not found.", nil)
		return
	}

	result, err := h.likeUseCase.Toggle(c.Request.Context(), identity.UserID, input)
	if err != nil {
		if writeKnownError(c, err) {
			return
		}
		h.logger.Error("Failed to toggle like: %v", err)
		serverError(c)
		return
	}

	message := "Blog unliked successfully."
	if result.Liked {
		message = "Blog liked successfully."
	}
	c.JSON(http.StatusOK, LikeResponse{
		Status:     true,
		Liked:      result.Liked,
		Message:    message,
		LikesCount: result.LikesCount,
	})
}
