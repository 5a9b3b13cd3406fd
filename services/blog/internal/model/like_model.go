package model

import "time"

type LikeModel struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_likes_user_likeable,priority:1" json:"user_id"`
	LikeableID   uint       `gorm:"not null;uniqueIndex:idx_likes_user_likeable,priority:2;index:idx_likes_likeable,priority:2" json:"likeable_id"`
	LikeableType string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_likes_user_likeable,priority:3;index:idx_likes_likeable,priority:1" json:"likeable_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	User         *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LikeModel) TableName() string {
	return "likes"
}
