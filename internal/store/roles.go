package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/events"
	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

// CreateRole inserts a new role. There is no pre-check on the name; the
// unique index decides, so two racing creates resolve at constraint
// check time with exactly one winner.
func (s *Store) CreateRole(ctx context.Context, name string) (models.Role, error) {
	name = strings.TrimSpace(name)
	if err := models.CheckRoleName(name); err != nil {
		return models.Role{}, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	role := models.Role{Name: name}
	if err := s.orm.WithContext(ctx).Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Role{}, fmt.Errorf("role %q already exists: %w", name, ErrConflict)
		}
		return models.Role{}, err
	}

	s.publish(events.SubjectRoleCreated, map[string]any{
		"role_id":   role.ID,
		"role_name": role.Name,
	})
	return role, nil
}

// ListRoles returns all roles in storage's natural order.
func (s *Store) ListRoles(ctx context.Context) ([]models.Role, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	roles := []models.Role{}
	if err := s.orm.WithContext(ctx).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
