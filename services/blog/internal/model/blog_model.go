package model

import "time"

type BlogModel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Image       *string    `gorm:"type:varchar(255)" json:"image"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`

	// Populated by list/detail queries through correlated subqueries.
	LikesCount int64 `gorm:"column:likes_count;->;-:migration" json:"likes_count"`
	LikedCount int64 `gorm:"column:liked_count;->;-:migration" json:"-"`
}

func (BlogModel) TableName() string {
	return "blogs"
}
