package entity

import "time"

const BlogsPerPage = 10

type BlogFilter string

const (
	FilterNone      BlogFilter = ""
	FilterLatest    BlogFilter = "latest"
	FilterMostLiked BlogFilter = "most_liked"
)

type Blog struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Read-side enrichment relative to a viewer.
	Author     string `json:"created_by"`
	LikesCount int64  `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}

// ImageKey is the blob store key of the stored image.
func (b *Blog) ImageKey() string {
	if b.Image == "" {
		return ""
	}
	return "blogs/" + b.Image
}

// BlogQuery selects one page of a user's blogs.
type BlogQuery struct {
	OwnerID  uint
	ViewerID uint
	Search   string
	Filter   BlogFilter
	Limit    int
	Offset   int
}

type BlogPage struct {
	Items   []*Blog
	Total   int64
	Page    int
	PerPage int
}

func (p *BlogPage) LastPage() int {
	if p.Total == 0 || p.PerPage <= 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}
