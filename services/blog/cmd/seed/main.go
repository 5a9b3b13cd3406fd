package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"

	"blogify/pkg/config"
	"blogify/pkg/database"
	"blogify/pkg/jwt"
	"blogify/pkg/logger"
	"blogify/pkg/validation"
	app "blogify/services/blog/internal/app"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/repo/persistent"
	"blogify/services/blog/internal/usecase"
)

const seedPassword = "password123"

type seeder struct {
	auth usecase.AuthUseCase
	blog usecase.BlogUseCase
	like usecase.LikeUseCase
	log  *logger.Logger
}

func main() {
	var blogsPerUser int
	var migrate bool
	flag.IntVar(&blogsPerUser, "blogs", 3, "Number of blogs to create per user")
	flag.BoolVar(&migrate, "migrate", false, "Run gorm auto-migration before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewForEnvironment(cfg.IsDevelopment())
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	if migrate || cfg.DBDriver == database.DriverSQLite {
		if err := persistent.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
	}

	blobs, err := app.NewBlobStore(cfg)
	if err != nil {
		log.Error("Failed to create blob store: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	tokenRepo := persistent.NewTokenRepository(db)
	blogRepo := persistent.NewBlogRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	validator := validation.New()
	policy := usecase.Policy{EnforceOwnership: cfg.EnforceOwnership}

	s := &seeder{
		auth: usecase.NewAuthUseCase(userRepo, tokenRepo, jwt.NewService(cfg.JWTSecret, cfg.TokenTTL), validator, log),
		blog: usecase.NewBlogUseCase(blogRepo, blobs, nil, validator, policy, log),
		like: usecase.NewLikeUseCase(likeRepo, map[entity.LikeableKind]usecase.Likeable{
			entity.KindBlog: usecase.NewBlogLikeable(blogRepo, likeRepo),
		}, nil, policy, log),
		log: log,
	}

	if err := s.run(context.Background(), blogsPerUser); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func (s *seeder) run(ctx context.Context, blogsPerUser int) error {
	testUsers := []struct {
		name  string
		email string
	}{
		{"Alice", "alice@test.com"},
		{"Bob", "bob@test.com"},
		{"Charlie", "charlie@test.com"},
	}

	users := make([]*entity.User, 0, len(testUsers))
	blogIDs := make([]uint, 0, len(testUsers)*blogsPerUser)

	for i, u := range testUsers {
		user, created, err := s.ensureUser(ctx, u.name, u.email)
		if err != nil {
			return err
		}
		users = append(users, user)
		if !created {
			s.log.Info("User %s already exists, skipping blogs", u.email)
			continue
		}
		s.log.Info("Created user: %s (%s)", user.Name, user.Email)

		for j := 0; j < blogsPerUser; j++ {
			upload, err := pngUpload(fmt.Sprintf("seed_%d_%d.png", i, j), palette[(i+j)%len(palette)])
			if err != nil {
				return err
			}
			blog, err := s.blog.Create(ctx, user.ID, usecase.BlogInput{
				Title:       fmt.Sprintf("%s's post #%d", user.Name, j+1),
				Description: fmt.Sprintf("Seeded post number %d written by %s.", j+1, user.Name),
				Image:       upload,
			})
			if err != nil {
				s.log.Error("Failed to create blog %d for %s: %v", j+1, user.Email, err)
				continue
			}
			blogIDs = append(blogIDs, blog.ID)
		}
	}

	// every user likes every other blog
	for _, user := range users {
		for k, blogID := range blogIDs {
			if (k+int(user.ID))%2 != 0 {
				continue
			}
			id := blogID
			if _, err := s.like.Toggle(ctx, user.ID, usecase.LikeInput{BlogID: &id}); err != nil {
				s.log.Error("Failed to like blog %d as %s: %v", blogID, user.Email, err)
			}
		}
	}

	s.log.Info("Seeded %d users and %d blogs", len(users), len(blogIDs))
	return nil
}

// ensureUser registers the user, or logs in when the email is taken.
func (s *seeder) ensureUser(ctx context.Context, name, email string) (*entity.User, bool, error) {
	user, _, err := s.auth.Register(ctx, usecase.RegisterInput{
		Name:                 name,
		Email:                email,
		Password:             seedPassword,
		PasswordConfirmation: seedPassword,
	})
	if err == nil {
		return user, true, nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || !fieldErrs.Has("email") {
		return nil, false, fmt.Errorf("failed to register %s: %w", email, err)
	}

	user, token, err := s.auth.Login(ctx, usecase.LoginInput{Email: email, Password: seedPassword})
	if err != nil {
		return nil, false, fmt.Errorf("failed to login %s: %w", email, err)
	}

	// drop the token issued just to resolve the user
	if identity, err := s.auth.Authenticate(ctx, token); err == nil {
		_ = s.auth.Logout(ctx, identity)
	}
	return user, false, nil
}

var palette = []color.RGBA{
	{R: 0xe6, G: 0x39, B: 0x46, A: 0xff},
	{R: 0x45, G: 0x7b, B: 0x9d, A: 0xff},
	{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff},
	{R: 0xf4, G: 0xa2, B: 0x61, A: 0xff},
}

// pngUpload renders a small gradient and wraps it as a multipart upload.
func pngUpload(filename string, base color.RGBA) (*multipart.FileHeader, error) {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			img.Set(x, y, color.RGBA{
				R: base.R,
				G: uint8(int(base.G) * x / size),
				B: uint8(int(base.B) * y / size),
				A: 0xff,
			})
		}
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(encoded.Bytes()); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return form.File["image"][0], nil
}
