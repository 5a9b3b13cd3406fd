package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"sync"
	"testing"

	"blogify/pkg/database"
	"blogify/pkg/jwt"
	"blogify/pkg/logger"
	"blogify/pkg/storage"
	"blogify/pkg/validation"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/repo/persistent"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	users  persistent.UserRepository
	tokens persistent.TokenRepository
	blogs  persistent.BlogRepository
	likes  persistent.LikeRepository
	disk   *storage.LocalDisk
	events *recordingPublisher
	auth   AuthUseCase
	blog   BlogUseCase
	like   LikeUseCase
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []BlogEvent
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload.(BlogEvent))
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestEnv(t *testing.T, policy Policy) *testEnv {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, persistent.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })

	disk, err := storage.NewLocalDisk(t.TempDir(), "http://localhost:8080/storage")
	require.NoError(t, err)

	log := logger.New()
	v := validation.New()
	env := &testEnv{
		users:  persistent.NewUserRepository(db),
		tokens: persistent.NewTokenRepository(db),
		blogs:  persistent.NewBlogRepository(db),
		likes:  persistent.NewLikeRepository(db),
		disk:   disk,
		events: &recordingPublisher{},
	}
	env.auth = NewAuthUseCase(env.users, env.tokens, jwt.NewService("test-secret", 0), v, log)
	env.blog = NewBlogUseCase(env.blogs, disk, env.events, v, policy, log)
	env.like = NewLikeUseCase(env.likes, map[entity.LikeableKind]Likeable{
		entity.KindBlog: NewBlogLikeable(env.blogs, env.likes),
	}, env.events, policy, log)
	return env
}

// seedUser inserts a user directly with a cheap hash.
func (e *testEnv) seedUser(t *testing.T, name string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{Name: name, Email: name + "@example.com", Password: string(hash)}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) createBlog(t *testing.T, owner uint, title string) *entity.Blog {
	t.Helper()
	blog, err := e.blog.Create(context.Background(), owner, BlogInput{
		Title:       title,
		Description: "about " + title,
		Image:       pngUpload(t, "cover.png"),
	})
	require.NoError(t, err)
	return blog
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pngUpload(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	return upload(t, filename, pngBytes(t))
}

func upload(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}
