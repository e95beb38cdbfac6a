package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldViolation reports an input failing a declared field constraint.
type FieldViolation struct {
	Field  string
	Reason string
}

func (e *FieldViolation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type userFields struct {
	Username string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
}

type roleFields struct {
	RoleName string `validate:"required,min=2"`
}

// CheckUserFields validates username and email against the declared
// constraints. Inputs are expected to be trimmed; every write path
// (API or seeding) runs through this before touching storage.
func CheckUserFields(username, email string) error {
	return firstViolation(validate.Struct(userFields{Username: username, Email: email}))
}

// CheckRoleName validates a role name against the declared constraints.
func CheckRoleName(name string) error {
	return firstViolation(validate.Struct(roleFields{RoleName: name}))
}

func firstViolation(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &FieldViolation{Field: fe.Field(), Reason: reasonFor(fe)}
	}
	return err
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
