package handlers

import (
	"encoding/json"
	"testing"

	"github.com/oriya-shimonian/Users-Roles-full-stack/internal/models"
)

func TestToUserDTO(t *testing.T) {
	user := models.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		Roles: []models.Role{
			{ID: 1, Name: "Admin"},
			{ID: 2, Name: "Editor"},
			{ID: 1, Name: "Admin"},
		},
	}

	dto := toUserDTO(user)
	if dto.ID != 7 || dto.Username != "alice" || dto.Email != "alice@example.com" {
		t.Fatalf("dto = %+v", dto)
	}
	if len(dto.Roles) != 2 || dto.Roles[0] != "Admin" || dto.Roles[1] != "Editor" {
		t.Fatalf("dto roles = %v, want deduplicated [Admin Editor]", dto.Roles)
	}
}

func TestUserDTOWireShape(t *testing.T) {
	dto := toUserDTO(models.User{ID: 1, Username: "bob", Email: "bob@example.com"})

	data, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Roles must be present as [] even with no assignments, and the
	// shape must stay flat: no nested role objects.
	want := `{"id":1,"username":"bob","email":"bob@example.com","roles":[]}`
	if string(data) != want {
		t.Fatalf("wire shape = %s, want %s", data, want)
	}
}
