package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogify/pkg/jwt"
	"blogify/pkg/logger"
	"blogify/pkg/middleware"
	"blogify/pkg/validation"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const tokenName = "api-token"

type RegisterInput struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

var registerMessages = validation.Messages{
	"name.required":     "Name is required.",
	"email.required":    "Email is required.",
	"email.email":       "Please enter a valid email address.",
	"password.required": "Password is required.",
	"password.min":      "Password must be at least 8 characters.",
	"password.eqfield":  "Password and confirm password do not match.",
}

var loginMessages = validation.Messages{
	"email.required":    "Email is required.",
	"email.email":       "Please enter a valid email address.",
	"password.required": "Password is required.",
	"password.min":      "Password must be at least 8 characters.",
}

const emailTakenMessage = "This email is already registered."

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, input LoginInput) (*entity.User, string, error)
	Logout(ctx context.Context, identity middleware.Identity) error
	Authenticate(ctx context.Context, token string) (middleware.Identity, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	tokenRepo  persistent.TokenRepository
	jwtService *jwt.Service
	validator  *validation.Validator
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	tokenRepo persistent.TokenRepository,
	jwtService *jwt.Service,
	validator *validation.Validator,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		validator:  validator,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	errs := validation.Errors{}
	if err := uc.validator.Validate(&input, registerMessages); err != nil {
		if !errors.As(err, &errs) {
			return nil, "", err
		}
	}

	if !errs.Has("email") {
		taken, err := uc.userRepo.EmailExists(ctx, input.Email)
		if err != nil {
			return nil, "", fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			errs.Add("email", emailTakenMessage)
		}
	}
	if len(errs) > 0 {
		return nil, "", errs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, "", validation.Errors{"email": {emailTakenMessage}}
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	uc.logger.Info("User %d registered", user.ID)
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*entity.User, string, error) {
	if err := uc.validator.Validate(&input, loginMessages); err != nil {
		return nil, "", err
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes only the token presented with the request.
func (uc *authUseCase) Logout(ctx context.Context, identity middleware.Identity) error {
	err := uc.tokenRepo.Delete(ctx, identity.TokenID)
	if errors.Is(err, persistent.ErrNotFound) {
		return ErrUnauthenticated
	}
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (uc *authUseCase) Authenticate(ctx context.Context, token string) (middleware.Identity, error) {
	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return middleware.Identity{}, ErrUnauthenticated
	}

	stored, err := uc.tokenRepo.GetByID(ctx, claims.ID)
	if errors.Is(err, persistent.ErrNotFound) {
		return middleware.Identity{}, ErrUnauthenticated
	}
	if err != nil {
		return middleware.Identity{}, fmt.Errorf("failed to load token: %w", err)
	}
	if stored.UserID != claims.UserID {
		return middleware.Identity{}, ErrUnauthenticated
	}

	if err := uc.tokenRepo.Touch(ctx, stored.ID, time.Now().UTC()); err != nil {
		uc.logger.Warn("Failed to record token usage for %s: %v", stored.ID, err)
	}

	return middleware.Identity{UserID: stored.UserID, TokenID: stored.ID}, nil
}

func (uc *authUseCase) issueToken(ctx context.Context, user *entity.User) (string, error) {
	record := &entity.Token{UserID: user.ID, Name: tokenName}
	if err := uc.tokenRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, record.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
