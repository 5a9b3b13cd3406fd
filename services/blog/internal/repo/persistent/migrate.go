package persistent

import (
	"blogify/services/blog/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate creates the schema for development databases. Production
// schemas are managed by goose migrations under migrations/.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.TokenModel{},
		&model.BlogModel{},
		&model.LikeModel{},
	)
}
