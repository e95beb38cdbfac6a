package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

// Migrate bootstraps the schema from the entity definitions. It is
// idempotent: existing tables and data are left untouched.
func Migrate(ctx context.Context, database *gorm.DB) error {
	if err := database.SetupJoinTable(&models.User{}, "Roles", &models.UserRole{}); err != nil {
		return err
	}

	return database.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
	)
}
