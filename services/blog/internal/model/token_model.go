package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TokenModel struct {
	ID         string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	LastUsedAt *time.Time `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
	User       *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TokenModel) TableName() string {
	return "personal_access_tokens"
}

func (t *TokenModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
