package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/events"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

// CreateUser validates the fields and inserts a new user. The id is
// assigned by storage.
func (s *Store) CreateUser(ctx context.Context, username, email string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := models.CheckUserFields(username, email); err != nil {
		return models.User{}, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user := models.User{Username: username, Email: email}
	if err := s.orm.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}

	s.publish(events.SubjectUserCreated, map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

// ListUsers returns users with their roles preloaded. A non-empty
// roleName restricts the result to holders of that exact role name.
// Ordering follows storage's natural order.
func (s *Store) ListUsers(ctx context.Context, roleName string) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	q := s.orm.WithContext(ctx).Model(&models.User{}).Preload("Roles")
	if roleName != "" {
		q = q.Joins("JOIN user_roles ON user_roles.user_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("roles.name = ?", roleName).
			Distinct("users.*")
	}

	users := []models.User{}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the user and its assignment rows as one unit.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := s.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The schema cascades user_roles on delete; the explicit delete
		// keeps the invariant on engines running without enforcement.
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(events.SubjectUserDeleted, map[string]any{"user_id": id})
	return nil
}

// ListRolesOfUser returns all roles assigned to the user. An unknown
// user id yields an empty list, matching the listing contract.
func (s *Store) ListRolesOfUser(ctx context.Context, userID uint) ([]models.Role, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	roles := []models.Role{}
	err := s.orm.WithContext(ctx).Model(&models.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
