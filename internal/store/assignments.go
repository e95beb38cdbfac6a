package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/events"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

// AssignRole creates the (user, role) assignment. The duplicate-pair
// check runs before the existence checks, so an already-assigned pair
// always reports a conflict. The check-then-insert sequence is not
// atomic; the composite primary key is the backstop for races.
func (s *Store) AssignRole(ctx context.Context, userID, roleID uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx := s.orm.WithContext(ctx)

	var pairCount int64
	if err := tx.Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&pairCount).Error; err != nil {
		return err
	}
	if pairCount > 0 {
		return fmt.Errorf("role already assigned to this user: %w", ErrConflict)
	}

	var userCount, roleCount int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&userCount).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Role{}).Where("id = ?", roleID).Count(&roleCount).Error; err != nil {
		return err
	}
	if userCount == 0 || roleCount == 0 {
		return fmt.Errorf("user or role: %w", ErrNotFound)
	}

	assignment := models.UserRole{UserID: userID, RoleID: roleID}
	if err := tx.Omit(clause.Associations).Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("role already assigned to this user: %w", ErrConflict)
		}
		return err
	}

	s.publish(events.SubjectAssignmentCreated, map[string]any{
		"user_id": userID,
		"role_id": roleID,
	})
	return nil
}

// UnassignRole removes the (user, role) assignment.
func (s *Store) UnassignRole(ctx context.Context, userID, roleID uint) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := s.orm.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&models.UserRole{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("assignment: %w", ErrNotFound)
	}

	s.publish(events.SubjectAssignmentDeleted, map[string]any{
		"user_id": userID,
		"role_id": roleID,
	})
	return nil
}
