package handlers

import "github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"

// UserDTO is the canonical wire shape for a user: nested relations are
// projected down to a flat, deduplicated list of role names so the
// User/Role graph never recurses on the wire.
type UserDTO struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func toUserDTO(user models.User) UserDTO {
	roles := make([]string, 0, len(user.Roles))
	seen := make(map[string]struct{}, len(user.Roles))
	for _, role := range user.Roles {
		if _, ok := seen[role.Name]; ok {
			continue
		}
		seen[role.Name] = struct{}{}
		roles = append(roles, role.Name)
	}
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roles,
	}
}

func toUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, user := range users {
		out = append(out, toUserDTO(user))
	}
	return out
}
