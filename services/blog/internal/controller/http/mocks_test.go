package http

import (
	"context"

	"blogify/pkg/middleware"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, identity middleware.Identity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (middleware.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(middleware.Identity), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockBlogUseCase struct {
	mock.Mock
}

func (m *MockBlogUseCase) List(ctx context.Context, caller uint, input usecase.ListBlogsInput) (*entity.BlogPage, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BlogPage), args.Error(1)
}

func (m *MockBlogUseCase) Create(ctx context.Context, caller uint, input usecase.BlogInput) (*entity.Blog, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) Update(ctx context.Context, caller uint, blogID uint, input usecase.BlogInput) (*entity.Blog, error) {
	args := m.Called(ctx, caller, blogID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Blog), args.Error(1)
}

func (m *MockBlogUseCase) Delete(ctx context.Context, caller uint, blogID uint) error {
	args := m.Called(ctx, caller, blogID)
	return args.Error(0)
}

func (m *MockBlogUseCase) ImageURL(blog *entity.Blog) string {
	if blog.ImageKey() == "" {
		return ""
	}
	return "http://localhost:8080/storage/" + blog.ImageKey()
}

var _ usecase.BlogUseCase = (*MockBlogUseCase)(nil)

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) Toggle(ctx context.Context, caller uint, input usecase.LikeInput) (*entity.LikeResult, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withIdentity(userID uint, tokenID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, middleware.Identity{UserID: userID, TokenID: tokenID})
		c.Next()
	}
}
