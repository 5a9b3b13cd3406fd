package persistent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blogify/pkg/database"
	"blogify/services/blog/internal/entity"
	"blogify/services/blog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

func createUser(t *testing.T, repo UserRepository, name string) *entity.User {
	t.Helper()
	user := &entity.User{Name: name, Email: fmt.Sprintf("%s@example.com", name), Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func createBlog(t *testing.T, repo BlogRepository, owner uint, title, description string) *entity.Blog {
	t.Helper()
	blog := &entity.Blog{UserID: owner, Title: title, Description: description, Image: "blog_" + title + ".png"}
	require.NoError(t, repo.Create(context.Background(), blog))
	return blog
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := createUser(t, repo, "alice")
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.Password)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)

	exists, err := repo.EmailExists(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Create(ctx, &entity.User{Name: "dup", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewTokenRepository(db)

	user := createUser(t, users, "bob")

	first := &entity.Token{UserID: user.ID, Name: "api-token"}
	require.NoError(t, repo.Create(ctx, first))
	second := &entity.Token{UserID: user.ID, Name: "api-token"}
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Touch(ctx, first.ID, now))
	touched, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, touched.LastUsedAt)
	assert.True(t, now.Equal(touched.LastUsedAt.UTC()))

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrNotFound)

	_, err = repo.GetByID(ctx, second.ID)
	assert.NoError(t, err)
}

func TestBlogRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewBlogRepository(db)

	owner := createUser(t, users, "carol")
	blog := createBlog(t, repo, owner.ID, "first", "hello world")
	assert.NotZero(t, blog.ID)

	loaded, err := repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", loaded.Author)
	assert.Equal(t, "blog_first.png", loaded.Image)
	assert.Zero(t, loaded.LikesCount)
	assert.False(t, loaded.IsLiked)

	loaded.Title = "renamed"
	loaded.Description = "new body"
	loaded.Image = "blog_new.png"
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.GetByID(ctx, blog.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", reloaded.Title)
	assert.Equal(t, "new body", reloaded.Description)
	assert.Equal(t, "blog_new.png", reloaded.Image)

	_, err = repo.GetByID(ctx, 9999, owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Blog{ID: 9999, Title: "x", Description: "y"}), ErrNotFound)
}

func TestBlogRepository_ListScopesSearchAndPaginates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewBlogRepository(db)

	owner := createUser(t, users, "dave")
	other := createUser(t, users, "erin")

	for i := 1; i <= 12; i++ {
		createBlog(t, repo, owner.ID, fmt.Sprintf("post-%02d", i), "plain text")
	}
	createBlog(t, repo, owner.ID, "Golang Tips", "nothing")
	createBlog(t, repo, owner.ID, "misc", "all about GOLANG")
	createBlog(t, repo, other.ID, "golang elsewhere", "not mine")

	blogs, total, err := repo.List(ctx, entity.BlogQuery{OwnerID: owner.ID, ViewerID: owner.ID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(14), total)
	assert.Len(t, blogs, 10)
	assert.Equal(t, "post-01", blogs[0].Title)
	for _, b := range blogs {
		assert.Equal(t, owner.ID, b.UserID)
		assert.Equal(t, "dave", b.Author)
	}

	page2, _, err := repo.List(ctx, entity.BlogQuery{OwnerID: owner.ID, Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Len(t, page2, 4)

	found, total, err := repo.List(ctx, entity.BlogQuery{OwnerID: owner.ID, Search: "golang", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	titles := []string{found[0].Title, found[1].Title}
	assert.ElementsMatch(t, []string{"Golang Tips", "misc"}, titles)
}

func TestBlogRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	repo := NewBlogRepository(db)

	owner := createUser(t, users, "frank")
	fans := []*entity.User{createUser(t, users, "fan1"), createUser(t, users, "fan2")}

	older := createBlog(t, repo, owner.ID, "older", "a")
	newer := createBlog(t, repo, owner.ID, "newer", "b")
	popular := createBlog(t, repo, owner.ID, "popular", "c")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&model.BlogModel{}).Where("id = ?", older.ID).UpdateColumn("created_at", base).Error)
	require.NoError(t, db.Model(&model.BlogModel{}).Where("id = ?", newer.ID).UpdateColumn("created_at", base.Add(48*time.Hour)).Error)
	require.NoError(t, db.Model(&model.BlogModel{}).Where("id = ?", popular.ID).UpdateColumn("created_at", base.Add(24*time.Hour)).Error)

	for _, fan := range fans {
		_, err := likes.Toggle(ctx, fan.ID, entity.LikeTarget{Kind: entity.KindBlog, ID: popular.ID})
		require.NoError(t, err)
	}
	_, err := likes.Toggle(ctx, owner.ID, entity.LikeTarget{Kind: entity.KindBlog, ID: newer.ID})
	require.NoError(t, err)

	latest, _, err := repo.List(ctx, entity.BlogQuery{OwnerID: owner.ID, ViewerID: owner.ID, Filter: entity.FilterLatest, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"newer", "popular", "older"}, blogTitles(latest))

	mostLiked, _, err := repo.List(ctx, entity.BlogQuery{OwnerID: owner.ID, ViewerID: owner.ID, Filter: entity.FilterMostLiked, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"popular", "newer", "older"}, blogTitles(mostLiked))
	assert.Equal(t, int64(2), mostLiked[0].LikesCount)
	assert.False(t, mostLiked[0].IsLiked)
	assert.Equal(t, int64(1), mostLiked[1].LikesCount)
	assert.True(t, mostLiked[1].IsLiked)
}

func TestBlogRepository_DeleteRemovesLikes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	repo := NewBlogRepository(db)

	owner := createUser(t, users, "gina")
	blog := createBlog(t, repo, owner.ID, "doomed", "x")
	kept := createBlog(t, repo, owner.ID, "kept", "y")
	target := entity.LikeTarget{Kind: entity.KindBlog, ID: blog.ID}
	keptTarget := entity.LikeTarget{Kind: entity.KindBlog, ID: kept.ID}

	_, err := likes.Toggle(ctx, owner.ID, target)
	require.NoError(t, err)
	_, err = likes.Toggle(ctx, owner.ID, keptTarget)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, blog.ID))

	exists, err := repo.Exists(ctx, blog.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	remaining, err := likes.ListByTarget(ctx, target)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	keptLikes, err := likes.ListByTarget(ctx, keptTarget)
	require.NoError(t, err)
	assert.Len(t, keptLikes, 1)

	assert.ErrorIs(t, repo.Delete(ctx, blog.ID), ErrNotFound)
}

func TestLikeRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	blogs := NewBlogRepository(db)

	user := createUser(t, users, "hank")
	blog := createBlog(t, blogs, user.ID, "likeable", "x")
	target := entity.LikeTarget{Kind: entity.KindBlog, ID: blog.ID}

	liked, err := likes.Toggle(ctx, user.ID, target)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := likes.Count(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	isLiked, err := likes.IsLiked(ctx, user.ID, target)
	require.NoError(t, err)
	assert.True(t, isLiked)

	all, err := likes.ListByTarget(ctx, target)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.KindBlog, all[0].Target.Kind)
	assert.Equal(t, user.ID, all[0].UserID)

	liked, err = likes.Toggle(ctx, user.ID, target)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = likes.Count(ctx, target)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeModel_UniquePerUserAndTarget(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	blogs := NewBlogRepository(db)

	user := createUser(t, users, "ivy")
	blog := createBlog(t, blogs, user.ID, "unique", "x")

	like := model.LikeModel{UserID: user.ID, LikeableID: blog.ID, LikeableType: string(entity.KindBlog)}
	require.NoError(t, db.Create(&like).Error)

	duplicate := model.LikeModel{UserID: user.ID, LikeableID: blog.ID, LikeableType: string(entity.KindBlog)}
	err := db.Create(&duplicate).Error
	assert.ErrorIs(t, translateError(err), ErrDuplicate)
}

func blogTitles(blogs []*entity.Blog) []string {
	titles := make([]string, len(blogs))
	for i, b := range blogs {
		titles[i] = b.Title
	}
	return titles
}
