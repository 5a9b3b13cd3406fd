package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"blogify/pkg/logger"
	"blogify/pkg/middleware"
	"blogify/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and issue a bearer token. The body may also be nested under "data".
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body usecase.RegisterInput true "Registration data"
// @Success      201  {object}  SuccessResponse{data=AuthPayload}
// @Failure      422  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input usecase.RegisterInput
	h.decodeBody(c, &input)

	user, token, err := h.authUseCase.Register(c.Request.Context(), input)
	if err != nil {
		if writeKnownError(c, err) {
			return
		}
		h.logger.Error("Register user error: %v", err)
		fail(c, http.StatusInternalServerError, "Something went wrong", gin.H{"exception": err.Error()})
		return
	}

	success(c, http.StatusCreated, "User registered successfully", AuthPayload{
		User:  newUserResource(user),
		Token: token,
	})
}

// Login godoc
// @Summary      Login user
// @Description  Verify credentials and issue a new bearer token. Earlier tokens stay valid.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body usecase.LoginInput true "Login credentials"
// @Success      200  {object}  SuccessResponse{data=AuthPayload}
// @Failure      401  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input usecase.LoginInput
	h.decodeBody(c, &input)

	user, token, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		if writeKnownError(c, err) {
			return
		}
		h.logger.Error("Login error: %v", err)
		serverError(c)
		return
	}

	success(c, http.StatusOK, "Login successful", AuthPayload{
		User:  newUserResource(user),
		Token: token,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the token used for this request
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  LogoutResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthenticated.", nil)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), identity); err != nil {
		if errors.Is(err, usecase.ErrUnauthenticated) {
			fail(c, http.StatusUnauthorized, "Unauthenticated.", nil)
			return
		}
		h.logger.Error("Logout error: %v", err)
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, LogoutResponse{Message: "Logged out successfully"})
}

// decodeBody accepts both {"field":...} and {"data":{"field":...}}. A body
// that cannot be decoded leaves dst empty so schema validation reports it.
func (h *AuthHandler) decodeBody(c *gin.Context, dst any) {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		h.logger.Debug("Ignoring malformed request body: %v", err)
		return
	}
	if len(wrapper.Data) > 0 && !bytes.Equal(wrapper.Data, []byte("null")) {
		raw = wrapper.Data
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		h.logger.Debug("Ignoring malformed request body: %v", err)
	}
}
