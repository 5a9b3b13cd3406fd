package http

import (
	"fmt"
	"time"

	"blogify/services/blog/internal/entity"

	"github.com/gin-gonic/gin"
)

const createdAtLayout = "02-01-2006 15:04:05"

type UserResource struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthPayload struct {
	User  UserResource `json:"user"`
	Token string       `json:"token"`
}

type BlogResource struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	LikesCount  int64  `json:"likes_count"`
	IsLiked     bool   `json:"is_liked"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at" example:"31-12-2024 23:59:59"`
}

// BlogPageResource mirrors a length-aware paginator.
type BlogPageResource struct {
	CurrentPage  int            `json:"current_page"`
	Data         []BlogResource `json:"data"`
	FirstPageURL string         `json:"first_page_url"`
	From         *int           `json:"from"`
	LastPage     int            `json:"last_page"`
	LastPageURL  string         `json:"last_page_url"`
	NextPageURL  *string        `json:"next_page_url"`
	Path         string         `json:"path"`
	PerPage      int            `json:"per_page"`
	PrevPageURL  *string        `json:"prev_page_url"`
	To           *int           `json:"to"`
	Total        int64          `json:"total"`
}

type LikeResponse struct {
	Status     bool   `json:"status" example:"true"`
	Liked      bool   `json:"liked"`
	Message    string `json:"message"`
	LikesCount int64  `json:"likes_count"`
}

type LogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

func newUserResource(user *entity.User) UserResource {
	return UserResource{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newBlogResource(blog *entity.Blog, imageURL string) BlogResource {
	return BlogResource{
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.Description,
		Image:       imageURL,
		LikesCount:  blog.LikesCount,
		IsLiked:     blog.IsLiked,
		CreatedBy:   blog.Author,
		CreatedAt:   blog.CreatedAt.Format(createdAtLayout),
	}
}

func newBlogPageResource(page *entity.BlogPage, path string, imageURL func(*entity.Blog) string) BlogPageResource {
	lastPage := page.LastPage()
	pageURL := func(n int) string {
		return fmt.Sprintf("%s?page=%d", path, n)
	}

	res := BlogPageResource{
		CurrentPage:  page.Page,
		Data:         make([]BlogResource, 0, len(page.Items)),
		FirstPageURL: pageURL(1),
		LastPage:     lastPage,
		LastPageURL:  pageURL(lastPage),
		Path:         path,
		PerPage:      page.PerPage,
		Total:        page.Total,
	}
	for _, blog := range page.Items {
		res.Data = append(res.Data, newBlogResource(blog, imageURL(blog)))
	}

	if len(page.Items) > 0 {
		from := (page.Page-1)*page.PerPage + 1
		to := from + len(page.Items) - 1
		res.From = &from
		res.To = &to
	}
	if page.Page < lastPage {
		next := pageURL(page.Page + 1)
		res.NextPageURL = &next
	}
	if page.Page > 1 {
		prev := pageURL(page.Page - 1)
		res.PrevPageURL = &prev
	}
	return res
}

// requestPath is the absolute URL of the current request without its query.
func requestPath(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
