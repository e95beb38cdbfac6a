package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

type seedUser struct {
	username string
	email    string
	roles    []string
}

// Seed applies a fixture idempotently: roles and assignments that
// already exist are skipped, users are matched by username and email.
// Role names referenced only by a user entry are created as well. The
// whole fixture is field-validated before the first insert, so a bad
// entry rejects the file instead of storing an invariant-violating row.
func Seed(ctx context.Context, database *gorm.DB, fixture Fixture) error {
	roleNames := make([]string, 0, len(fixture.Roles))
	for _, name := range fixture.Roles {
		roleNames = append(roleNames, strings.TrimSpace(name))
	}

	users := make([]seedUser, 0, len(fixture.Users))
	for _, entry := range fixture.Users {
		user := seedUser{
			username: strings.TrimSpace(entry.Username),
			email:    strings.TrimSpace(entry.Email),
			roles:    entry.RoleNames(),
		}
		users = append(users, user)
		roleNames = append(roleNames, user.roles...)
	}

	for _, name := range roleNames {
		if err := models.CheckRoleName(name); err != nil {
			return fmt.Errorf("fixture role %q: %w", name, err)
		}
	}
	for _, user := range users {
		if err := models.CheckUserFields(user.username, user.email); err != nil {
			return fmt.Errorf("fixture user %q: %w", user.username, err)
		}
	}

	tx := database.WithContext(ctx)

	for _, name := range roleNames {
		role := models.Role{Name: name}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}

	for _, entry := range users {
		user := models.User{Username: entry.username, Email: entry.email}
		if err := tx.Where(models.User{Username: entry.username, Email: entry.email}).
			FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", entry.username, err)
		}

		for _, name := range entry.roles {
			var role models.Role
			if err := tx.Where("name = ?", name).First(&role).Error; err != nil {
				return fmt.Errorf("seed user %q role %q: %w", entry.username, name, err)
			}
			assignment := models.UserRole{UserID: user.ID, RoleID: role.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Omit(clause.Associations).Create(&assignment).Error; err != nil {
				return fmt.Errorf("seed assignment %q/%q: %w", entry.username, name, err)
			}
		}
	}

	return nil
}
