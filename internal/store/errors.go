package store

import (
	"errors"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

// ErrNotFound reports that a referenced id or name resolves to nothing.
var ErrNotFound = errors.New("not found")

// ErrConflict reports that a uniqueness or duplicate-assignment
// constraint would be violated.
var ErrConflict = errors.New("conflict")

// ValidationError reports an input failing a declared field constraint.
// The check itself lives with the models so that every write path,
// including seeding, applies the same rules.
type ValidationError = models.FieldViolation
