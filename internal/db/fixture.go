package db

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixture is the seed file format: role names plus users with their
// role assignments.
type Fixture struct {
	Roles []string      `yaml:"roles"`
	Users []UserFixture `yaml:"users"`
}

// UserFixture tolerates two shapes for a user's roles: the canonical
// flat list of names, and the legacy nested assignment records exported
// by older clients. RoleNames merges both.
type UserFixture struct {
	Username  string              `yaml:"username"`
	Email     string              `yaml:"email"`
	Roles     []string            `yaml:"roles"`
	UserRoles []assignmentFixture `yaml:"userRoles"`
}

type assignmentFixture struct {
	Role roleFixture `yaml:"role"`
}

type roleFixture struct {
	Name string `yaml:"roleName"`
}

// RoleNames returns the deduplicated role names for the user, reading
// the flat field first and falling back to the nested records. Missing
// or empty fields are skipped, never an error.
func (u UserFixture) RoleNames() []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range u.Roles {
		add(name)
	}
	for _, assignment := range u.UserRoles {
		add(assignment.Role.Name)
	}

	return names
}

// LoadFixture parses a YAML seed file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	return fixture, nil
}
